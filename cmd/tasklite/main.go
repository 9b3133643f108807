package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sandeepkv93/tasklite/internal/logging"
	"github.com/sandeepkv93/tasklite/internal/storage"
	"github.com/sandeepkv93/tasklite/internal/tasks"
	"github.com/sandeepkv93/tasklite/internal/translator"
	"github.com/sandeepkv93/tasklite/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tasklite failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load(".env")

	cfg, err := update.LoadRuntimeConfigFile(update.DefaultRuntimeConfig(), os.Getenv("TASKLITE_CONFIG"))
	if err != nil {
		return err
	}
	cfg = update.RuntimeConfigFromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	kv, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	store := tasks.NewStore(kv, tasks.WithLogger(logger))
	if err := store.Initialize(context.Background()); err != nil {
		return err
	}

	tr, err := translator.New(cfg.Language, logger)
	if err != nil {
		return err
	}

	logger.Info("starting", zap.String("db", cfg.DBPath), zap.String("lang", tr.Language()))

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	model := update.NewModel(update.Dependencies{
		Store:      store,
		Prefs:      kv,
		Translator: tr,
		Logger:     logger,
	}, cfg)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return err
	}
	return nil
}
