package usecase

import (
	"context"

	"github.com/friendsofgo/errors"

	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/search"
	"pharmaclear-api/pkg/paginator"
	"pharmaclear-api/pkg/postgre"
)

func (uc *implUsecase) Create(ctx context.Context, sc model.Scope, input search.CreateInput) (model.SavedSearch, error) {
	created, err := uc.repo.Create(ctx, search.CreateOptions{
		ID:        postgre.NewUUID(),
		UserID:    sc.UserID,
		Query:     input.Query,
		Source:    input.Source,
		Severity:  input.Severity,
		DateRange: input.DateRange,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.search.usecase.Create: %v", err)
		return model.SavedSearch{}, err
	}
	return created, nil
}

func (uc *implUsecase) List(ctx context.Context, sc model.Scope, input search.ListInput) (search.ListOutput, error) {
	input.PagQuery.Adjust()

	searches, total, err := uc.repo.List(ctx, search.ListOptions{
		UserID: sc.UserID,
		Limit:  input.PagQuery.Limit,
		Offset: input.PagQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.search.usecase.List: %v", err)
		return search.ListOutput{}, err
	}

	return search.ListOutput{
		Searches: searches,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(searches)),
			PerPage:     input.PagQuery.Limit,
			CurrentPage: input.PagQuery.Page,
		},
	}, nil
}

func (uc *implUsecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, search.ErrSearchNotFound) {
			return search.ErrSearchNotFound
		}
		uc.l.Errorf(ctx, "internal.search.usecase.Delete: %v", err)
		return err
	}

	if existing.UserID != sc.UserID {
		return search.ErrNotOwner
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "internal.search.usecase.Delete: %v", err)
		return err
	}
	return nil
}
