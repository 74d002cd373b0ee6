package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/tsawler/tablature"
	"github.com/tsawler/tablature/cache"
	"github.com/tsawler/tablature/consensus"
	"github.com/tsawler/tablature/strategies"
)

func main() {
	fs := ff.NewFlagSet("tablature")
	var (
		input        = fs.StringLong("input", "", "Document dump file to reconstruct (JSON)")
		output       = fs.StringLong("output", "", "Result output file (default stdout)")
		workers      = fs.IntLong("workers", 4, "Concurrent page workers")
		cachePath    = fs.StringLong("cache", "", "Result cache file (disabled when empty)")
		useOCR       = fs.BoolLong("ocr", "Enable the OCR strategy (requires Tesseract)")
		ocrLang      = fs.StringLong("ocr-lang", "eng", "OCR language")
		modelKey     = fs.StringLong("model-key", "", "Model backend API key (or set TABLATURE_MODEL_KEY)")
		modelName    = fs.StringLong("model-name", "", "Model backend model name")
		modelTimeout = fs.DurationLong("model-timeout", 45*time.Second, "Model strategy deadline")
		verbose      = fs.BoolLong("verbose", "Enable debug logging")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("TABLATURE"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *input == "" {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintln(os.Stderr, "error: --input is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *input, *output, *workers, *cachePath, *useOCR, *ocrLang, *modelKey, *modelName, *modelTimeout); err != nil {
		logger.Error("reconstruction failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, input, output string, workers int, cachePath string, useOCR bool, ocrLang, modelKey, modelName string, modelTimeout time.Duration) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var store *cache.Store
	var key string
	if cachePath != "" {
		store, err = cache.Open(cachePath)
		if err != nil {
			return err
		}
		defer store.Close()

		key = cache.Key(raw)
		if cached, err := store.Get(key); err == nil {
			logger.Info("cache hit", "key", key)
			return writeResult(output, cached)
		} else if !errors.Is(err, cache.ErrNotFound) {
			logger.Warn("cache lookup failed", "error", err)
		}
	}

	dump, err := DecodeDump(raw)
	if err != nil {
		return err
	}

	opts := tablature.DefaultOptions()
	opts.Workers = workers
	opts.Logger = logger
	opts.ModelTimeout = modelTimeout

	if useOCR {
		ocr, err := strategies.NewOCR(ocrLang)
		if err != nil {
			return fmt.Errorf("initializing OCR: %w", err)
		}
		defer ocr.Close()
		opts.ExtraStrategies = append(opts.ExtraStrategies, ocr)
	}
	if modelKey == "" {
		modelKey = os.Getenv("TABLATURE_MODEL_KEY")
	}
	if modelKey != "" {
		mdl, err := strategies.NewModel(ctx, modelKey, modelName)
		if err != nil {
			return fmt.Errorf("initializing model strategy: %w", err)
		}
		defer mdl.Close()
		opts.ExtraStrategies = append(opts.ExtraStrategies, mdl)
		logger.Info("model strategy enabled", "strategy", consensus.StrategyModel)
	}

	engine := tablature.New(opts)
	result, err := engine.Reconstruct(ctx, &dumpSource{dump: dump})
	if err != nil {
		return err
	}

	if len(result.Warnings) > 0 {
		logger.Warn("reconstruction finished with warnings",
			"count", len(result.Warnings))
		for _, w := range result.Warnings {
			logger.Debug("warning", "detail", w.String())
		}
	}

	if store != nil {
		if err := store.Put(key, result); err != nil {
			logger.Warn("cache store failed", "error", err)
		}
	}
	return writeResult(output, result)
}

func writeResult(output string, result *tablature.Result) error {
	data, err := sonic.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	data = append(data, '\n')
	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(output, data, 0644)
}
