package http

import (
	"pharmaclear-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the account routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	users := r.Group("/users")
	{
		users.POST("", h.Register)
	}

	r.POST("/token", h.Login)

	me := r.Group("/users/me")
	me.Use(mw.Auth())
	{
		me.GET("", h.Me)
	}
}
