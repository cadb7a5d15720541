package http

import (
	"pharmaclear-api/pkg/response"
	"pharmaclear-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Register creates a new account.
// @Summary Register a new user
// @Tags User
// @Accept json
// @Produce json
// @Param body body registerReq true "Registration payload"
// @Success 201 {object} response.Resp{data=userResp}
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/users [POST]
func (h *Handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processRegisterRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, eMap)
		return
	}

	created, err := h.uc.Register(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "internal.user.delivery.http.Register: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.Created(c, newUserResp(created))
}

// Login exchanges credentials for an access token.
// @Summary Log in
// @Tags User
// @Accept json
// @Produce json
// @Param body body loginReq true "Credentials"
// @Success 200 {object} response.Resp{data=loginResp}
// @Failure 401 {object} response.Resp
// @Router /api/v1/token [POST]
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processLoginRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, eMap)
		return
	}

	out, err := h.uc.Login(ctx, input)
	if err != nil {
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.OK(c, newLoginResp(out))
}

// Me returns the authenticated user's profile.
// @Summary Get current user
// @Tags User
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.Resp{data=userResp}
// @Failure 401 {object} response.Resp
// @Router /api/v1/users/me [GET]
func (h *Handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	u, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.user.delivery.http.Me: %v", err)
		response.ErrorWithMap(c, err, eMap)
		return
	}

	response.OK(c, newUserResp(u))
}
