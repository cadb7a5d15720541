package postgre

import (
	"database/sql"

	"pharmaclear-api/internal/search"
	"pharmaclear-api/pkg/log"
)

type implRepository struct {
	l  log.Logger
	db *sql.DB
}

func New(l log.Logger, db *sql.DB) search.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
