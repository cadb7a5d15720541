package postgre

import (
	"context"
	"database/sql"
	_ "embed"

	"github.com/friendsofgo/errors"
)

//go:embed schema.sql
var schema string

// Migrate applies the schema. All statements are idempotent so this is safe
// to run on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "apply schema")
	}
	return nil
}
