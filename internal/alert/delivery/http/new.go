package http

import (
	"pharmaclear-api/internal/alert"
	"pharmaclear-api/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc alert.UseCase
}

func New(l log.Logger, uc alert.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
