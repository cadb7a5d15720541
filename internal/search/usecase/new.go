package usecase

import (
	"pharmaclear-api/internal/search"
	"pharmaclear-api/pkg/log"
)

type implUsecase struct {
	l    log.Logger
	repo search.Repository
}

func New(l log.Logger, repo search.Repository) search.UseCase {
	return &implUsecase{
		l:    l,
		repo: repo,
	}
}
