package postgre

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"

	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/watchlist"
	"pharmaclear-api/pkg/postgre"
)

func (r *implRepository) Create(ctx context.Context, opts watchlist.CreateOptions) (model.WatchlistItem, error) {
	const query = `
		INSERT INTO watchlist_items (id, user_id, keyword)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, keyword, created_at`

	var item model.WatchlistItem
	err := r.db.QueryRowContext(ctx, query, opts.ID, opts.UserID, opts.Keyword).
		Scan(&item.ID, &item.UserID, &item.Keyword, &item.CreatedAt)
	if err != nil {
		if postgre.IsUniqueViolation(err) {
			return model.WatchlistItem{}, watchlist.ErrDuplicate
		}
		return model.WatchlistItem{}, errors.Wrap(err, "insert watchlist item")
	}
	return item, nil
}

func (r *implRepository) ListByUser(ctx context.Context, userID string) ([]model.WatchlistItem, error) {
	const query = `
		SELECT id, user_id, keyword, created_at
		FROM watchlist_items
		WHERE user_id = $1
		ORDER BY created_at DESC`

	return r.queryItems(ctx, query, userID)
}

// ListAll returns every watchlist item across all users. Used by the
// background poller.
func (r *implRepository) ListAll(ctx context.Context) ([]model.WatchlistItem, error) {
	const query = `
		SELECT id, user_id, keyword, created_at
		FROM watchlist_items
		ORDER BY created_at`

	return r.queryItems(ctx, query)
}

func (r *implRepository) GetByID(ctx context.Context, id string) (model.WatchlistItem, error) {
	if err := postgre.IsUUID(id); err != nil {
		return model.WatchlistItem{}, watchlist.ErrItemNotFound
	}

	const query = `
		SELECT id, user_id, keyword, created_at
		FROM watchlist_items
		WHERE id = $1`

	var item model.WatchlistItem
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&item.ID, &item.UserID, &item.Keyword, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.WatchlistItem{}, watchlist.ErrItemNotFound
		}
		return model.WatchlistItem{}, errors.Wrap(err, "get watchlist item")
	}
	return item, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM watchlist_items WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return errors.Wrap(err, "delete watchlist item")
	}
	return nil
}

func (r *implRepository) queryItems(ctx context.Context, query string, args ...any) ([]model.WatchlistItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list watchlist items")
	}
	defer rows.Close()

	items := make([]model.WatchlistItem, 0)
	for rows.Next() {
		var item model.WatchlistItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Keyword, &item.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan watchlist item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate watchlist items")
	}
	return items, nil
}
