package http

import (
	"time"

	"pharmaclear-api/internal/model"
)

type addReq struct {
	Keyword string `json:"keyword"`
}

type watchlistItem struct {
	ID        string `json:"id"`
	Keyword   string `json:"keyword"`
	CreatedAt string `json:"created_at"`
}

func newWatchlistItem(item model.WatchlistItem) watchlistItem {
	return watchlistItem{
		ID:        item.ID,
		Keyword:   item.Keyword,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func newWatchlistItems(items []model.WatchlistItem) []watchlistItem {
	out := make([]watchlistItem, 0, len(items))
	for _, item := range items {
		out = append(out, newWatchlistItem(item))
	}
	return out
}
