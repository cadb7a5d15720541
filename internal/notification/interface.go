package notification

import (
	"context"

	"pharmaclear-api/internal/model"
)

type UseCase interface {
	// Create persists a notification and publishes it for real-time push.
	Create(ctx context.Context, input CreateInput) (model.Notification, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	MarkRead(ctx context.Context, sc model.Scope, id string) error
	MarkAllRead(ctx context.Context, sc model.Scope) error
}

type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Notification, error)
	ListByUser(ctx context.Context, opts ListOptions) ([]model.Notification, int64, error)
	GetByID(ctx context.Context, id string) (model.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}
