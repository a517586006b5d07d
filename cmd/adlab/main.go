package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/saltbalente/adlab/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")

	score := flag.Bool("score", false, "score a single field and exit")
	optimize := flag.Bool("optimize", false, "optimize a single field and exit")
	abTest := flag.Bool("abtest", false, "create a tone A/B test")
	winner := flag.Bool("winner", false, "evaluate observed metrics and pick a winner")

	text := flag.String("text", "", "field text for -score/-optimize")
	desc := flag.Bool("desc", false, "treat -text as a description instead of a headline")
	keywords := flag.String("keywords", "", "comma-separated target keywords")
	tones := flag.String("tones", "", "comma-separated tones for -abtest (overrides config)")
	business := flag.String("business", "", "business type: esoteric|generic (overrides config)")
	target := flag.Float64("target", 0, "target score for -optimize (default from config)")
	metrics := flag.String("metrics", "", "YAML file with observed metrics for -winner")
	dryRun := flag.Bool("dry-run", false, "force the template generator even with an API key")

	table := flag.Bool("table", false, "print full tables (default: compact 1-line)")
	verbose := flag.Bool("verbose", false, "set log level to debug and print field breakdowns")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *business != "" {
		cfg.ABTest.BusinessType = *business
	}
	if *tones != "" {
		cfg.ABTest.Tones = splitList(*tones)
	}
	if *target > 0 {
		cfg.ABTest.TargetScore = *target
	}
	setupLogger(cfg.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch {
	case *score:
		runScore(*text, *desc, splitList(*keywords))
	case *optimize:
		runOptimize(*text, *desc, splitList(*keywords), cfg.ABTest.TargetScore)
	case *abTest:
		runABTest(ctx, cfg, splitList(*keywords), *table, *verbose, *dryRun)
	case *winner:
		runWinner(ctx, cfg, *metrics, *table, *verbose)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// splitList parte una lista separada por comas, descartando vacíos.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
