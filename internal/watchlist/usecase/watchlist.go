package usecase

import (
	"context"
	"strings"

	"github.com/friendsofgo/errors"

	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/watchlist"
	"pharmaclear-api/pkg/postgre"
)

func (uc *implUsecase) Add(ctx context.Context, sc model.Scope, keyword string) (model.WatchlistItem, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return model.WatchlistItem{}, watchlist.ErrEmptyKeyword
	}

	created, err := uc.repo.Create(ctx, watchlist.CreateOptions{
		ID:      postgre.NewUUID(),
		UserID:  sc.UserID,
		Keyword: keyword,
	})
	if err != nil {
		if errors.Is(err, watchlist.ErrDuplicate) {
			return model.WatchlistItem{}, watchlist.ErrDuplicate
		}
		uc.l.Errorf(ctx, "internal.watchlist.usecase.Add: %v", err)
		return model.WatchlistItem{}, err
	}
	return created, nil
}

func (uc *implUsecase) List(ctx context.Context, sc model.Scope) ([]model.WatchlistItem, error) {
	items, err := uc.repo.ListByUser(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.watchlist.usecase.List: %v", err)
		return nil, err
	}
	return items, nil
}

func (uc *implUsecase) Remove(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, watchlist.ErrItemNotFound) {
			return watchlist.ErrItemNotFound
		}
		uc.l.Errorf(ctx, "internal.watchlist.usecase.Remove: %v", err)
		return err
	}

	if existing.UserID != sc.UserID {
		return watchlist.ErrNotOwner
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "internal.watchlist.usecase.Remove: %v", err)
		return err
	}
	return nil
}
