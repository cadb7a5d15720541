package search

import (
	"context"

	"pharmaclear-api/internal/model"
)

type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.SavedSearch, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}

type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.SavedSearch, error)
	List(ctx context.Context, opts ListOptions) ([]model.SavedSearch, int64, error)
	GetByID(ctx context.Context, id string) (model.SavedSearch, error)
	Delete(ctx context.Context, id string) error
}
