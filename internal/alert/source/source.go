package source

import (
	"context"

	"pharmaclear-api/internal/model"
)

// Source translates one upstream regulatory feed into canonical alert
// records. Implementations must be safe for concurrent use; a shared
// HTTP client is injected at construction and never rebuilt per request.
type Source interface {
	Name() model.Source
	Fetch(ctx context.Context, query string) ([]model.AlertRecord, error)
}
