package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	analysisHTTP "smart-task-analyzer/internal/analysis/delivery/http"
	"smart-task-analyzer/internal/middleware"
)

const environmentProduction = "production"

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		gin.Recovery(),
		srv.mw.RequestID(),
		srv.mw.Logging(),
		srv.mw.Metrics(),
		srv.mw.SecurityHeaders(),
	)

	ctx := context.Background()
	if srv.environment == environmentProduction {
		srv.l.Infof(ctx, "CORS mode: production, allowed origins %v", srv.corsOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, allowed origins %v", srv.environment, srv.corsOrigins)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	h := analysisHTTP.New(srv.l, srv.analysisUC)
	analysisHTTP.RegisterRoutes(srv.gin, h, srv.mw.RateLimit())
	srv.l.Infof(context.Background(), "Analysis route registered at POST /analyze-task")
}
