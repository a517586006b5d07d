package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/saltbalente/adlab/config"
	"github.com/saltbalente/adlab/internal/abtest"
	"github.com/saltbalente/adlab/internal/adapters/generate"
	"github.com/saltbalente/adlab/internal/adapters/notify"
	"github.com/saltbalente/adlab/internal/adapters/storage"
	"github.com/saltbalente/adlab/internal/ports"
)

// runABTest crea un test de tonos con las keywords dadas.
func runABTest(ctx context.Context, cfg *config.Config, keywords []string, table, verbose, dryRun bool) {
	if len(keywords) == 0 {
		slog.Error("missing -keywords")
		os.Exit(2)
	}

	var generator ports.Generator
	if cfg.HasAPIKey() && !dryRun {
		generator = generate.NewClient(cfg.Generator.APIBase, cfg.Generator.APIKey, cfg.Generator.Model)
		slog.Info("using AI generator", "model", cfg.Generator.Model)
	} else {
		generator = generate.NewTemplate()
		slog.Info("no API key configured, using template generator")
	}

	store, err := storage.NewSQLiteStorage(cfg.Storage.DSN)
	if err != nil {
		slog.Error("failed to open storage", "err", err, "dsn", cfg.Storage.DSN)
		os.Exit(1)
	}
	defer store.Close()

	notifier := notify.NewConsole(table, verbose)

	engineCfg := abtest.DefaultConfig()
	engineCfg.BusinessType = cfg.ABTest.BusinessType
	engineCfg.NumHeadlines = cfg.ABTest.NumHeadlines
	engineCfg.NumDescriptions = cfg.ABTest.NumDescriptions
	engineCfg.Workers = cfg.ABTest.Workers
	engineCfg.MinClicks = cfg.ABTest.MinClicks
	engineCfg.MinConfidence = cfg.ABTest.MinConfidence

	engine := abtest.New(engineCfg, generator, store, notifier)

	test, err := engine.CreateToneTest(ctx, keywords, cfg.ABTest.Tones)
	if err != nil {
		slog.Error("abtest failed", "err", err)
		os.Exit(1)
	}

	slog.Info("abtest complete",
		"test_id", test.ID,
		"variations", len(test.Results),
		"best_predicted", test.BestPredicted,
	)
}
