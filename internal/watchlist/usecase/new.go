package usecase

import (
	"pharmaclear-api/internal/watchlist"
	"pharmaclear-api/pkg/log"
)

type implUsecase struct {
	l    log.Logger
	repo watchlist.Repository
}

func New(l log.Logger, repo watchlist.Repository) watchlist.UseCase {
	return &implUsecase{
		l:    l,
		repo: repo,
	}
}
