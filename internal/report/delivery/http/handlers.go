package http

import (
	"pharmaclear-api/pkg/response"
	"pharmaclear-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Generate builds a PDF compliance report for a search and returns a
// presigned download URL.
// @Summary Generate a compliance report
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateReq true "Search to report on"
// @Security ApiKeyAuth
// @Success 200 {object} response.Resp{data=generateResp}
// @Failure 400 {object} response.Resp
// @Router /api/v1/report [POST]
func (h *Handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, errInvalidBody, eMap)
		return
	}
	req.applyDefaults()

	sc := scope.GetScopeFromContext(ctx)

	out, err := h.uc.Generate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.report.delivery.http.Generate: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.OK(c, newGenerateResp(out))
}

// Chat answers a question about the alerts matching a query.
// @Summary Ask about regulatory alerts
// @Tags Report
// @Accept json
// @Produce json
// @Param body body chatReq true "Question and optional search query for context"
// @Security ApiKeyAuth
// @Success 200 {object} response.Resp{data=chatResp}
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/chat [POST]
func (h *Handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, errInvalidBody, eMap)
		return
	}

	sc := scope.GetScopeFromContext(ctx)

	out, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.report.delivery.http.Chat: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.OK(c, chatResp{Answer: out.Answer})
}
