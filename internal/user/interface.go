package user

import (
	"context"

	"pharmaclear-api/internal/model"
)

type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (model.User, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}

type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
}
