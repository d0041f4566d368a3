package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-task-analyzer/config"
	"smart-task-analyzer/internal/analysis"
	"smart-task-analyzer/internal/analysis/usecase"
	"smart-task-analyzer/internal/cli"
	"smart-task-analyzer/pkg/llmprovider"
	"smart-task-analyzer/pkg/log"
	"smart-task-analyzer/pkg/openai"
)

// Set by ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(newUseCase).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newUseCase(verbose bool) (analysis.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := "error"
	if verbose {
		level = cfg.Logger.Level
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	provider, err := llmprovider.NewProvider(cfg.LLM)
	if err != nil && !errors.Is(err, openai.ErrMissingAPIKey) {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Analyzer.Timezone)
	if err != nil {
		return nil, err
	}

	return usecase.New(logger, provider, usecase.Config{
		Temperature: cfg.LLM.Temperature,
		Location:    loc,
	}), nil
}
