package http

import (
	"pharmaclear-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the watchlist routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("/watchlist")
	g.Use(mw.Auth())
	{
		g.POST("", h.Add)
		g.GET("", h.List)
		g.DELETE("/:id", h.Remove)
	}
}
