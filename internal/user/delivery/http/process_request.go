package http

import (
	"pharmaclear-api/internal/user"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processRegisterRequest(c *gin.Context) (user.RegisterInput, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return user.RegisterInput{}, errInvalidBody
	}
	if err := req.validate(); err != nil {
		return user.RegisterInput{}, err
	}
	return req.toInput(), nil
}

func (h *Handler) processLoginRequest(c *gin.Context) (user.LoginInput, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return user.LoginInput{}, errInvalidBody
	}
	if err := req.validate(); err != nil {
		return user.LoginInput{}, err
	}
	return req.toInput(), nil
}
