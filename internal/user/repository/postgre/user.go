package postgre

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"

	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/user"
	"pharmaclear-api/pkg/postgre"
)

func (r *implRepository) Create(ctx context.Context, opts user.CreateOptions) (model.User, error) {
	const query = `
		INSERT INTO users (id, email, hashed_password, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, hashed_password, full_name, created_at, updated_at`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, opts.ID, opts.Email, opts.HashedPassword, opts.FullName).
		Scan(&u.ID, &u.Email, &u.HashedPassword, &u.FullName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if postgre.IsUniqueViolation(err) {
			return model.User{}, user.ErrEmailExists
		}
		return model.User{}, errors.Wrap(err, "insert user")
	}
	return u, nil
}

func (r *implRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	const query = `
		SELECT id, email, hashed_password, full_name, created_at, updated_at
		FROM users
		WHERE email = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *implRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	if err := postgre.IsUUID(id); err != nil {
		return model.User{}, user.ErrUserNotFound
	}

	const query = `
		SELECT id, email, hashed_password, full_name, created_at, updated_at
		FROM users
		WHERE id = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *implRepository) scanOne(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.HashedPassword, &u.FullName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, user.ErrUserNotFound
		}
		return model.User{}, errors.Wrap(err, "scan user")
	}
	return u, nil
}
