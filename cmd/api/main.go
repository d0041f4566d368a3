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
	_ "smart-task-analyzer/docs" // Swagger docs
	"smart-task-analyzer/internal/analysis/usecase"
	"smart-task-analyzer/internal/httpserver"
	"smart-task-analyzer/pkg/llmprovider"
	"smart-task-analyzer/pkg/log"
	"smart-task-analyzer/pkg/openai"
)

// @title       Smart Task Analyzer API
// @description Turns free-form task text into a structured task record using an LLM.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Analyzer...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider (optional at boot; analyses fail with 500 without it)
	provider, err := llmprovider.NewProvider(cfg.LLM)
	switch {
	case errors.Is(err, openai.ErrMissingAPIKey):
		logger.Warn(ctx, "LLM API key is not set (OPENAI_API_KEY or llm.api_key): /analyze-task will answer 500 until it is configured")
		provider = nil
	case err != nil:
		logger.Error(ctx, "Failed to initialize LLM provider: ", err)
		return
	default:
		logger.Infof(ctx, "LLM provider: %s (model %s)", provider.Name(), provider.Model())
	}

	// 4. Analysis use case
	loc, err := time.LoadLocation(cfg.Analyzer.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid analyzer timezone: ", err)
		return
	}
	analysisUC := usecase.New(logger, provider, usecase.Config{
		Temperature: cfg.LLM.Temperature,
		Location:    loc,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:                   cfg.HTTPServer.Port,
		Mode:                   cfg.HTTPServer.Mode,
		TrustedProxies:         cfg.HTTPServer.TrustedProxies,
		Environment:            cfg.Environment.Name,
		CORSAllowedOrigins:     cfg.CORS.AllowedOrigins,
		RateLimit:              cfg.RateLimit,
		AnalysisUseCase:        analysisUC,
		CollaboratorConfigured: provider != nil,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
