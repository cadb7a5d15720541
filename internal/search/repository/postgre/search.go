package postgre

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"

	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/search"
	"pharmaclear-api/pkg/postgre"
)

func (r *implRepository) Create(ctx context.Context, opts search.CreateOptions) (model.SavedSearch, error) {
	const query = `
		INSERT INTO saved_searches (id, user_id, query, source, severity, date_range)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, query, source, severity, date_range, created_at`

	var s model.SavedSearch
	err := r.db.QueryRowContext(ctx, query,
		opts.ID, opts.UserID, opts.Query, opts.Source, opts.Severity, opts.DateRange).
		Scan(&s.ID, &s.UserID, &s.Query, &s.Source, &s.Severity, &s.DateRange, &s.CreatedAt)
	if err != nil {
		return model.SavedSearch{}, errors.Wrap(err, "insert saved search")
	}
	return s, nil
}

func (r *implRepository) List(ctx context.Context, opts search.ListOptions) ([]model.SavedSearch, int64, error) {
	const countQuery = `SELECT COUNT(*) FROM saved_searches WHERE user_id = $1`

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, opts.UserID).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count saved searches")
	}

	const listQuery = `
		SELECT id, user_id, query, source, severity, date_range, created_at
		FROM saved_searches
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, listQuery, opts.UserID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list saved searches")
	}
	defer rows.Close()

	searches := make([]model.SavedSearch, 0)
	for rows.Next() {
		var s model.SavedSearch
		if err := rows.Scan(&s.ID, &s.UserID, &s.Query, &s.Source, &s.Severity, &s.DateRange, &s.CreatedAt); err != nil {
			return nil, 0, errors.Wrap(err, "scan saved search")
		}
		searches = append(searches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "iterate saved searches")
	}

	return searches, total, nil
}

func (r *implRepository) GetByID(ctx context.Context, id string) (model.SavedSearch, error) {
	if err := postgre.IsUUID(id); err != nil {
		return model.SavedSearch{}, search.ErrSearchNotFound
	}

	const query = `
		SELECT id, user_id, query, source, severity, date_range, created_at
		FROM saved_searches
		WHERE id = $1`

	var s model.SavedSearch
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.UserID, &s.Query, &s.Source, &s.Severity, &s.DateRange, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.SavedSearch{}, search.ErrSearchNotFound
		}
		return model.SavedSearch{}, errors.Wrap(err, "get saved search")
	}
	return s, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM saved_searches WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return errors.Wrap(err, "delete saved search")
	}
	return nil
}
