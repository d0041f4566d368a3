package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"smart-task-analyzer/config"
	"smart-task-analyzer/internal/analysis"
	"smart-task-analyzer/internal/middleware"
	"smart-task-analyzer/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string
	mw          middleware.Middleware

	// Analysis domain
	analysisUC             analysis.UseCase
	collaboratorConfigured bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Port               int
	Mode               string
	TrustedProxies     []string // empty: X-Forwarded-For is never believed
	Environment        string
	CORSAllowedOrigins []string
	RateLimit          config.RateLimitConfig

	// Analysis domain
	AnalysisUseCase analysis.UseCase
	// CollaboratorConfigured is false when no LLM credential was found.
	CollaboratorConfigured bool
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		corsOrigins: cfg.CORSAllowedOrigins,
		analysisUC:  cfg.AnalysisUseCase,

		collaboratorConfigured: cfg.CollaboratorConfigured,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	srv.mw = middleware.New(logger, cfg.RateLimit)
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.analysisUC == nil {
		return errors.New("analysis use case is required")
	}
	return nil
}
