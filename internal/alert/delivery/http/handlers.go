package http

import (
	"pharmaclear-api/pkg/response"
	"pharmaclear-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Search aggregates regulatory alerts matching a query.
// @Summary Search regulatory alerts
// @Description Fans the query out to the FDA and Health Canada sources, merges the results, and applies the requested filters.
// @Tags Alert
// @Produce json
// @Param q query string true "Search query, minimum 2 characters"
// @Param date_filter query string false "Date range" Enums(all, 1y, 3y, 5y) default(all)
// @Param source_filter query string false "Source" Enums(all, FDA, Health Canada) default(all)
// @Param severity_filter query string false "Severity" Enums(all, low, medium, high) default(all)
// @Security ApiKeyAuth
// @Success 200 {object} response.Resp{data=searchResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/search [GET]
func (h *Handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSearchRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, eMap)
		return
	}

	sc := scope.GetScopeFromContext(ctx)

	out, err := h.uc.Search(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "internal.alert.delivery.http.Search: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.OK(c, newSearchResp(out))
}
