package websocket

import (
	"net/http"

	"pharmaclear-api/pkg/log"
	"pharmaclear-api/pkg/response"
	"pharmaclear-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	l          log.Logger
	hub        *Hub
	jwtManager scope.Manager
	upgrader   websocket.Upgrader
}

func NewHandler(l log.Logger, hub *Hub, jwtManager scope.Manager) *Handler {
	return &Handler{
		l:          l,
		hub:        hub,
		jwtManager: jwtManager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// RegisterRoutes registers the websocket route. Auth happens inside the
// handler via a token query parameter because the browser WebSocket API
// cannot set an Authorization header.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ws", h.Connect)
}

// Connect upgrades the HTTP connection to a websocket for real-time
// notification pushes.
// @Summary Connect to the notification stream
// @Tags Notification
// @Param token query string true "Access token"
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} response.Resp
// @Router /api/v1/ws [GET]
func (h *Handler) Connect(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.Query("token")
	if token == "" {
		response.Unauthorized(c)
		return
	}

	payload, err := h.jwtManager.Verify(token)
	if err != nil {
		h.l.Warnf(ctx, "websocket token verification failed: %v", err)
		response.Unauthorized(c)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Errorf(ctx, "websocket upgrade failed: %v", err)
		return
	}

	client := newClient(h.hub, conn, scope.NewScope(payload).UserID)
	h.hub.register <- client

	go client.writePump(ctx)
	go client.readPump(ctx)
}
