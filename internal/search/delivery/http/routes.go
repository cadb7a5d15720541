package http

import (
	"pharmaclear-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the saved search routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("/searches")
	g.Use(mw.Auth())
	{
		g.POST("", h.Create)
		g.GET("", h.List)
		g.DELETE("/:id", h.Delete)
	}
}
