package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/friendsofgo/errors"

	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/notification"
	"pharmaclear-api/pkg/paginator"
	"pharmaclear-api/pkg/postgre"
)

func (uc *implUsecase) Create(ctx context.Context, input notification.CreateInput) (model.Notification, error) {
	created, err := uc.repo.Create(ctx, notification.CreateOptions{
		ID:            postgre.NewUUID(),
		UserID:        input.UserID,
		Keyword:       input.Keyword,
		AlertTitle:    input.AlertTitle,
		AlertSource:   input.AlertSource,
		AlertSeverity: input.AlertSeverity,
		AlertURL:      input.AlertURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.Create: %v", err)
		return model.Notification{}, err
	}

	uc.publish(ctx, created)

	return created, nil
}

// publish pushes the notification on the Redis channel for connected
// websocket clients. Push delivery is best effort; a publish failure never
// fails the create.
func (uc *implUsecase) publish(ctx context.Context, n model.Notification) {
	if uc.redis == nil {
		return
	}

	payload, err := json.Marshal(notification.PushMessage{
		ID:            n.ID,
		UserID:        n.UserID,
		Keyword:       n.Keyword,
		AlertTitle:    n.AlertTitle,
		AlertSource:   n.AlertSource,
		AlertSeverity: n.AlertSeverity,
		AlertURL:      n.AlertURL,
		CreatedAt:     n.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.publish: %v", err)
		return
	}

	if err := uc.redis.Publish(ctx, notification.PushChannel, payload); err != nil {
		uc.l.Warnf(ctx, "internal.notification.usecase.publish: %v", err)
	}
}

func (uc *implUsecase) List(ctx context.Context, sc model.Scope, input notification.ListInput) (notification.ListOutput, error) {
	input.PagQuery.Adjust()

	notifications, total, err := uc.repo.ListByUser(ctx, notification.ListOptions{
		UserID:     sc.UserID,
		UnreadOnly: input.UnreadOnly,
		Limit:      input.PagQuery.Limit,
		Offset:     input.PagQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.List: %v", err)
		return notification.ListOutput{}, err
	}

	return notification.ListOutput{
		Notifications: notifications,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(notifications)),
			PerPage:     input.PagQuery.Limit,
			CurrentPage: input.PagQuery.Page,
		},
	}, nil
}

func (uc *implUsecase) MarkRead(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			return notification.ErrNotificationNotFound
		}
		uc.l.Errorf(ctx, "internal.notification.usecase.MarkRead: %v", err)
		return err
	}

	if existing.UserID != sc.UserID {
		return notification.ErrNotOwner
	}

	if err := uc.repo.MarkRead(ctx, id); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.MarkRead: %v", err)
		return err
	}
	return nil
}

func (uc *implUsecase) MarkAllRead(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.MarkAllRead(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.MarkAllRead: %v", err)
		return err
	}
	return nil
}
