package usecase

import (
	"pharmaclear-api/internal/user"
	"pharmaclear-api/pkg/log"
	"pharmaclear-api/pkg/scope"
)

type implUsecase struct {
	l          log.Logger
	repo       user.Repository
	jwtManager scope.Manager
}

func New(l log.Logger, repo user.Repository, jwtManager scope.Manager) user.UseCase {
	return &implUsecase{
		l:          l,
		repo:       repo,
		jwtManager: jwtManager,
	}
}
