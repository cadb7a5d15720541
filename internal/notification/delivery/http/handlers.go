package http

import (
	"pharmaclear-api/internal/notification"
	"pharmaclear-api/pkg/response"
	"pharmaclear-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// List returns the authenticated user's notifications, newest first.
// @Summary List notifications
// @Tags Notification
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param unread_only query bool false "Only unread notifications"
// @Security ApiKeyAuth
// @Success 200 {object} response.Resp{data=listResp}
// @Router /api/v1/notifications [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithMap(c, errInvalidQuery, eMap)
		return
	}

	sc := scope.GetScopeFromContext(ctx)

	out, err := h.uc.List(ctx, sc, notification.ListInput{
		PagQuery:   req.PaginateQuery,
		UnreadOnly: req.UnreadOnly,
	})
	if err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.List: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.OK(c, newListResp(out))
}

// MarkAllRead marks every unread notification of the user as read.
// @Summary Mark all notifications read
// @Tags Notification
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.Resp
// @Router /api/v1/notifications/read-all [POST]
func (h *Handler) MarkAllRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	if err := h.uc.MarkAllRead(ctx, sc); err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.MarkAllRead: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.OK(c, nil)
}

// MarkRead marks one notification as read.
// @Summary Mark a notification read
// @Tags Notification
// @Produce json
// @Param id path string true "Notification ID"
// @Security ApiKeyAuth
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/notifications/{id}/read [POST]
func (h *Handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	if err := h.uc.MarkRead(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.MarkRead: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.OK(c, nil)
}
