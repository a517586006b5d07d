package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saltbalente/adlab/config"
	"github.com/saltbalente/adlab/internal/abtest"
	"github.com/saltbalente/adlab/internal/adapters/notify"
	"github.com/saltbalente/adlab/internal/domain"
)

// runWinner evalúa métricas observadas desde un archivo YAML y presenta la
// decisión de ganador.
func runWinner(ctx context.Context, cfg *config.Config, metricsPath string, table, verbose bool) {
	if metricsPath == "" {
		slog.Error("missing -metrics")
		os.Exit(2)
	}

	observed, err := loadMetrics(metricsPath)
	if err != nil {
		slog.Error("failed to load metrics", "err", err, "path", metricsPath)
		os.Exit(1)
	}

	notifier := notify.NewConsole(table, verbose)

	selector := abtest.NewSelector(cfg.ABTest.MinClicks, cfg.ABTest.MinConfidence)
	decision := selector.RecommendWinner(observed)

	if err := notifier.NotifyWinner(ctx, decision); err != nil {
		slog.Error("notifier error", "err", err)
		os.Exit(1)
	}
}

// loadMetrics lee un YAML de label → métricas observadas:
//
//	A:
//	  impressions: 12000
//	  clicks: 480
//	  conversions: 24
//	  cost: 360.0
func loadMetrics(path string) (map[string]domain.ObservedMetrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	var observed map[string]domain.ObservedMetrics
	if err := yaml.Unmarshal(data, &observed); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if len(observed) == 0 {
		return nil, fmt.Errorf("el archivo no contiene variaciones")
	}
	return observed, nil
}
