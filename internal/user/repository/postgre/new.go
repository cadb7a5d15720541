package postgre

import (
	"database/sql"

	"pharmaclear-api/internal/user"
	"pharmaclear-api/pkg/log"
)

type implRepository struct {
	l  log.Logger
	db *sql.DB
}

func New(l log.Logger, db *sql.DB) user.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
