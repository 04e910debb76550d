package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the API routes onto a fresh gin engine
func NewRouter(h *StrategyHandler, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(logger))

	router.GET("/healthz", h.Health)

	strategy := router.Group("/api/strategy")
	strategy.GET("/options", h.Options)
	strategy.POST("/decide", h.Decide)
	strategy.GET("/rules", h.Rules)

	return router
}
