package http

import (
	"pharmaclear-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the alert search routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("/search")
	g.Use(mw.Auth())
	{
		g.GET("", h.Search)
	}
}
