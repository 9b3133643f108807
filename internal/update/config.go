package update

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/tasklite/internal/model"
	"github.com/sandeepkv93/tasklite/internal/views"
)

type RuntimeConfig struct {
	DBPath          string `yaml:"db_path"`
	LogFile         string `yaml:"log_file"`
	LogLevel        string `yaml:"log_level"`
	DefaultPriority string `yaml:"default_priority"`
	Language        string `yaml:"language"`
	ColorTheme      string `yaml:"color_theme"`
	AltScreen       bool   `yaml:"alt_screen"`
	ListHeight      int    `yaml:"list_height"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:          ".tasklite.db",
		LogFile:         "",
		LogLevel:        "info",
		DefaultPriority: string(model.PriorityHigh),
		Language:        "en",
		ColorTheme:      views.Palettes[0].Name,
		AltScreen:       true,
		ListHeight:      12,
	}
}

// LoadRuntimeConfigFile overlays the YAML file at path onto base. Keys
// absent from the file keep their base value. An empty path returns base.
func LoadRuntimeConfigFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return base, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TASKLITE_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("TASKLITE_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("TASKLITE_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvString("TASKLITE_DEFAULT_PRIORITY"); ok {
		cfg.DefaultPriority = strings.ToLower(v)
	}
	if v, ok := getEnvString("TASKLITE_LANG"); ok {
		cfg.Language = v
	}
	if v, ok := getEnvString("TASKLITE_COLOR_THEME"); ok {
		cfg.ColorTheme = strings.ToLower(v)
	}
	if v, ok := getEnvBool("TASKLITE_ALT_SCREEN"); ok {
		cfg.AltScreen = v
	}
	if v, ok := getEnvInt("TASKLITE_LIST_HEIGHT"); ok && v > 0 {
		cfg.ListHeight = v
	}
	return cfg
}

func (c RuntimeConfig) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("config: db_path is required")
	}
	if _, err := model.ParsePriority(c.DefaultPriority); err != nil {
		return fmt.Errorf("config: default_priority: %w", err)
	}
	if views.PaletteIndex(c.ColorTheme) < 0 {
		return fmt.Errorf("config: unknown color_theme %q", c.ColorTheme)
	}
	if c.ListHeight <= 0 {
		return fmt.Errorf("config: list_height must be positive")
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
