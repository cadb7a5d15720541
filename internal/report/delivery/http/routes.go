package http

import (
	"pharmaclear-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the report and chat routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("")
	g.Use(mw.Auth())
	{
		g.POST("/report", h.Generate)
		g.POST("/chat", h.Chat)
	}
}
