package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter assembles the gin engine with middleware and routes.
func NewRouter(h *Handler, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(AccessLog(log))

	router.GET("/healthz", h.Health)

	api := router.Group("/api/v1/catalog")
	{
		api.GET("/search", h.Search)
		api.GET("/filters", h.Filters)
	}

	return router
}
