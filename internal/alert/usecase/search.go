package usecase

import (
	"context"
	"strings"
	"sync"

	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/alert/source"
	"pharmaclear-api/internal/model"
)

const minQueryLength = 2

// Search fans the query out to every source concurrently, waits for all of
// them, merges their outputs, and applies the requested filters. A failing
// source contributes an empty slice; its error is logged, never returned,
// so one upstream outage degrades the search instead of breaking it.
func (uc *implUsecase) Search(ctx context.Context, sc model.Scope, input alert.SearchInput) (alert.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if len(query) < minQueryLength {
		return alert.SearchOutput{}, alert.ErrQueryTooShort
	}

	results := make([][]model.AlertRecord, len(uc.sources))

	var wg sync.WaitGroup
	for i, src := range uc.sources {
		wg.Add(1)
		go func(i int, src source.Source) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, uc.fetchTimeout)
			defer cancel()

			records, err := src.Fetch(fetchCtx, query)
			if err != nil {
				uc.l.Errorf(ctx, "internal.alert.usecase.Search: source %s: %v", src.Name(), err)
				return
			}
			results[i] = records
		}(i, src)
	}
	wg.Wait()

	merged := make([]model.AlertRecord, 0)
	for _, records := range results {
		merged = append(merged, records...)
	}

	filtered := applyFilters(merged, input.Filter, uc.clock())
	sortByDateDescending(filtered)

	return alert.SearchOutput{
		Results: filtered,
		Total:   len(filtered),
	}, nil
}
