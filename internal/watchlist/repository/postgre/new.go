package postgre

import (
	"database/sql"

	"pharmaclear-api/internal/watchlist"
	"pharmaclear-api/pkg/log"
)

type implRepository struct {
	l  log.Logger
	db *sql.DB
}

func New(l log.Logger, db *sql.DB) watchlist.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
