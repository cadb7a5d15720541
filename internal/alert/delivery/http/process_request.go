package http

import (
	"pharmaclear-api/internal/alert"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processSearchRequest(c *gin.Context) (alert.SearchInput, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return alert.SearchInput{}, errInvalidDateFilter
	}
	if err := req.validate(); err != nil {
		return alert.SearchInput{}, err
	}
	return req.toInput(), nil
}
