package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) registerHealthRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.healthCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// healthCheck reports unhealthy when either backing store is down.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.healthCheck: postgres: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"component": "postgres",
		})
		return
	}

	if err := srv.redis.Ping(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.healthCheck: redis: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"component": "redis",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
