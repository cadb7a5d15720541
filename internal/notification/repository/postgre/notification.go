package postgre

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"

	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/notification"
	"pharmaclear-api/pkg/postgre"
)

func (r *implRepository) Create(ctx context.Context, opts notification.CreateOptions) (model.Notification, error) {
	const query = `
		INSERT INTO notifications (id, user_id, keyword, alert_title, alert_source, alert_severity, alert_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, keyword, alert_title, alert_source, alert_severity, alert_url, is_read, created_at`

	var n model.Notification
	err := r.db.QueryRowContext(ctx, query,
		opts.ID, opts.UserID, opts.Keyword, opts.AlertTitle, opts.AlertSource, opts.AlertSeverity, opts.AlertURL).
		Scan(&n.ID, &n.UserID, &n.Keyword, &n.AlertTitle, &n.AlertSource, &n.AlertSeverity, &n.AlertURL, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return model.Notification{}, errors.Wrap(err, "insert notification")
	}
	return n, nil
}

func (r *implRepository) ListByUser(ctx context.Context, opts notification.ListOptions) ([]model.Notification, int64, error) {
	countQuery := `SELECT COUNT(*) FROM notifications WHERE user_id = $1`
	listQuery := `
		SELECT id, user_id, keyword, alert_title, alert_source, alert_severity, alert_url, is_read, created_at
		FROM notifications
		WHERE user_id = $1`
	if opts.UnreadOnly {
		countQuery += ` AND is_read = FALSE`
		listQuery += ` AND is_read = FALSE`
	}
	listQuery += `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, opts.UserID).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count notifications")
	}

	rows, err := r.db.QueryContext(ctx, listQuery, opts.UserID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list notifications")
	}
	defer rows.Close()

	notifications := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Keyword, &n.AlertTitle, &n.AlertSource, &n.AlertSeverity, &n.AlertURL, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, 0, errors.Wrap(err, "scan notification")
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "iterate notifications")
	}

	return notifications, total, nil
}

func (r *implRepository) GetByID(ctx context.Context, id string) (model.Notification, error) {
	if err := postgre.IsUUID(id); err != nil {
		return model.Notification{}, notification.ErrNotificationNotFound
	}

	const query = `
		SELECT id, user_id, keyword, alert_title, alert_source, alert_severity, alert_url, is_read, created_at
		FROM notifications
		WHERE id = $1`

	var n model.Notification
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&n.ID, &n.UserID, &n.Keyword, &n.AlertTitle, &n.AlertSource, &n.AlertSeverity, &n.AlertURL, &n.IsRead, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, notification.ErrNotificationNotFound
		}
		return model.Notification{}, errors.Wrap(err, "get notification")
	}
	return n, nil
}

func (r *implRepository) MarkRead(ctx context.Context, id string) error {
	const query = `UPDATE notifications SET is_read = TRUE WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return errors.Wrap(err, "mark notification read")
	}
	return nil
}

func (r *implRepository) MarkAllRead(ctx context.Context, userID string) error {
	const query = `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return errors.Wrap(err, "mark all notifications read")
	}
	return nil
}
