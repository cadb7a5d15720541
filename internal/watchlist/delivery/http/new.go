package http

import (
	"pharmaclear-api/internal/watchlist"
	"pharmaclear-api/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc watchlist.UseCase
}

func New(l log.Logger, uc watchlist.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
