package http

import (
	"pharmaclear-api/internal/search"
	"pharmaclear-api/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc search.UseCase
}

func New(l log.Logger, uc search.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
