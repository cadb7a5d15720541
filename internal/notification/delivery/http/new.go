package http

import (
	"pharmaclear-api/internal/notification"
	"pharmaclear-api/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc notification.UseCase
}

func New(l log.Logger, uc notification.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
