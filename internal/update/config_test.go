package update

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.DBPath != ".tasklite.db" || cfg.LogFile != "" {
		t.Fatalf("unexpected storage defaults: %+v", cfg)
	}
	if cfg.DefaultPriority != "high" || cfg.ColorTheme != "purple-blue" {
		t.Fatalf("unexpected ui defaults: %+v", cfg)
	}
	if !cfg.AltScreen || cfg.ListHeight != 12 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("TASKLITE_DB_PATH", "state/tasks.db")
	t.Setenv("TASKLITE_LOG_FILE", "state/tasklite.log")
	t.Setenv("TASKLITE_LOG_LEVEL", "debug")
	t.Setenv("TASKLITE_DEFAULT_PRIORITY", "LOW")
	t.Setenv("TASKLITE_LANG", "fr")
	t.Setenv("TASKLITE_COLOR_THEME", "green-blue")
	t.Setenv("TASKLITE_ALT_SCREEN", "off")
	t.Setenv("TASKLITE_LIST_HEIGHT", "20")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DBPath != "state/tasks.db" || cfg.LogFile != "state/tasklite.log" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected storage overrides: %+v", cfg)
	}
	if cfg.DefaultPriority != "low" || cfg.Language != "fr" || cfg.ColorTheme != "green-blue" {
		t.Fatalf("unexpected ui overrides: %+v", cfg)
	}
	if cfg.AltScreen || cfg.ListHeight != 20 {
		t.Fatalf("unexpected runtime overrides: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("TASKLITE_ALT_SCREEN", "maybe")
	t.Setenv("TASKLITE_LIST_HEIGHT", "-4")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if !cfg.AltScreen || cfg.ListHeight != 12 {
		t.Fatalf("garbage env should keep defaults: %+v", cfg)
	}
}

func TestLoadRuntimeConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklite.yaml")
	body := "db_path: /tmp/custom.db\ncolor_theme: red-yellow\nlist_height: 5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadRuntimeConfigFile(DefaultRuntimeConfig(), path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" || cfg.ColorTheme != "red-yellow" || cfg.ListHeight != 5 {
		t.Fatalf("unexpected file overrides: %+v", cfg)
	}
	if cfg.DefaultPriority != "high" || !cfg.AltScreen {
		t.Fatalf("absent keys should keep defaults: %+v", cfg)
	}

	t.Setenv("TASKLITE_COLOR_THEME", "purple-pink")
	cfg = RuntimeConfigFromEnv(cfg)
	if cfg.ColorTheme != "purple-pink" {
		t.Fatalf("env should win over file: %+v", cfg)
	}
}

func TestLoadRuntimeConfigFileErrors(t *testing.T) {
	base := DefaultRuntimeConfig()
	if cfg, err := LoadRuntimeConfigFile(base, ""); err != nil || cfg != base {
		t.Fatalf("empty path should return base, got %+v, %v", cfg, err)
	}
	if _, err := LoadRuntimeConfigFile(base, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("list_height: [nope"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadRuntimeConfigFile(base, bad); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRuntimeConfigValidate(t *testing.T) {
	cases := []func(*RuntimeConfig){
		func(c *RuntimeConfig) { c.DBPath = " " },
		func(c *RuntimeConfig) { c.DefaultPriority = "urgent" },
		func(c *RuntimeConfig) { c.ColorTheme = "neon" },
		func(c *RuntimeConfig) { c.ListHeight = 0 },
	}
	for i, mutate := range cases {
		cfg := DefaultRuntimeConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, cfg)
		}
	}
}
