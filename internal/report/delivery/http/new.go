package http

import (
	"pharmaclear-api/internal/report"
	"pharmaclear-api/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc report.UseCase
}

func New(l log.Logger, uc report.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
