package alert

import (
	"context"

	"pharmaclear-api/internal/model"
)

type UseCase interface {
	// Search fans the query out to every configured regulatory source,
	// merges the results, and applies the requested filters.
	Search(ctx context.Context, sc model.Scope, input SearchInput) (SearchOutput, error)
}
