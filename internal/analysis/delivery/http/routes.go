package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the analysis endpoint. Extra middlewares (rate limiting)
// run before the handler.
func RegisterRoutes(r gin.IRoutes, h Handler, mws ...gin.HandlerFunc) {
	handlers := append(mws, h.Analyze)
	r.POST("/analyze-task", handlers...)
}
