package http

import (
	"pharmaclear-api/internal/search"
	"pharmaclear-api/pkg/paginator"
	"pharmaclear-api/pkg/response"
	"pharmaclear-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Create stores a search for later reuse.
// @Summary Save a search
// @Tags Search
// @Accept json
// @Produce json
// @Param body body createReq true "Search to save"
// @Security ApiKeyAuth
// @Success 201 {object} response.Resp{data=searchItem}
// @Failure 400 {object} response.Resp
// @Router /api/v1/searches [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, errInvalidBody, eMap)
		return
	}
	req.applyDefaults()
	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, eMap)
		return
	}

	sc := scope.GetScopeFromContext(ctx)

	created, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.search.delivery.http.Create: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.Created(c, newSearchItem(created))
}

// List returns the authenticated user's saved searches.
// @Summary List saved searches
// @Tags Search
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Security ApiKeyAuth
// @Success 200 {object} response.Resp{data=listResp}
// @Router /api/v1/searches [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		response.ErrorWithMap(c, errInvalidBody, eMap)
		return
	}

	sc := scope.GetScopeFromContext(ctx)

	out, err := h.uc.List(ctx, sc, search.ListInput{PagQuery: pq})
	if err != nil {
		h.l.Errorf(ctx, "internal.search.delivery.http.List: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.OK(c, newListResp(out))
}

// Delete removes a saved search owned by the authenticated user.
// @Summary Delete a saved search
// @Tags Search
// @Produce json
// @Param id path string true "Saved search ID"
// @Security ApiKeyAuth
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/searches/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "internal.search.delivery.http.Delete: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.OK(c, nil)
}
