package http

import (
	"pharmaclear-api/internal/user"
	"pharmaclear-api/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc user.UseCase
}

func New(l log.Logger, uc user.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
