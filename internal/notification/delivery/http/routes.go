package http

import (
	"pharmaclear-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the notification routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("/notifications")
	g.Use(mw.Auth())
	{
		g.GET("", h.List)
		g.POST("/read-all", h.MarkAllRead)
		g.POST("/:id/read", h.MarkRead)
	}
}
