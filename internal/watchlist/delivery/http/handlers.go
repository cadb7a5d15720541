package http

import (
	"pharmaclear-api/pkg/response"
	"pharmaclear-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Add puts a keyword on the authenticated user's watchlist.
// @Summary Add a watchlist keyword
// @Tags Watchlist
// @Accept json
// @Produce json
// @Param body body addReq true "Keyword to watch"
// @Security ApiKeyAuth
// @Success 201 {object} response.Resp{data=watchlistItem}
// @Failure 409 {object} response.Resp
// @Router /api/v1/watchlist [POST]
func (h *Handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, errInvalidBody, eMap)
		return
	}

	sc := scope.GetScopeFromContext(ctx)

	created, err := h.uc.Add(ctx, sc, req.Keyword)
	if err != nil {
		h.l.Errorf(ctx, "internal.watchlist.delivery.http.Add: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.Created(c, newWatchlistItem(created))
}

// List returns the authenticated user's watchlist.
// @Summary List watchlist keywords
// @Tags Watchlist
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.Resp{data=[]watchlistItem}
// @Router /api/v1/watchlist [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	items, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.watchlist.delivery.http.List: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.OK(c, newWatchlistItems(items))
}

// Remove deletes a watchlist item owned by the authenticated user.
// @Summary Remove a watchlist keyword
// @Tags Watchlist
// @Produce json
// @Param id path string true "Watchlist item ID"
// @Security ApiKeyAuth
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/watchlist/{id} [DELETE]
func (h *Handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	if err := h.uc.Remove(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "internal.watchlist.delivery.http.Remove: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.OK(c, nil)
}
