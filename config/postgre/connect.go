package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"pharmaclear-api/config"

	"github.com/friendsofgo/errors"
	_ "github.com/lib/pq"
)

var db *sql.DB

// Connect opens the PostgreSQL connection pool and verifies it with a ping.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres connection")
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := conn.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "ping postgres")
	}

	db = conn
	return db, nil
}

// Disconnect closes the connection pool.
func Disconnect() error {
	if db == nil {
		return nil
	}
	return db.Close()
}
