package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-analyzer/internal/analysis"
	pkgLog "smart-task-analyzer/pkg/log"
)

// Handler is the public interface for the analysis HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc analysis.UseCase
}

// New creates a new HTTP handler for the analysis domain.
func New(l pkgLog.Logger, uc analysis.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
