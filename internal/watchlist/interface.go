package watchlist

import (
	"context"

	"pharmaclear-api/internal/model"
)

type UseCase interface {
	Add(ctx context.Context, sc model.Scope, keyword string) (model.WatchlistItem, error)
	List(ctx context.Context, sc model.Scope) ([]model.WatchlistItem, error)
	Remove(ctx context.Context, sc model.Scope, id string) error
}

type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.WatchlistItem, error)
	ListByUser(ctx context.Context, userID string) ([]model.WatchlistItem, error)
	ListAll(ctx context.Context) ([]model.WatchlistItem, error)
	GetByID(ctx context.Context, id string) (model.WatchlistItem, error)
	Delete(ctx context.Context, id string) error
}
