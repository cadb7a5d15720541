package model

import "time"

// WatchlistItem is a keyword a user monitors for new alerts.
type WatchlistItem struct {
	ID        string
	UserID    string
	Keyword   string
	CreatedAt time.Time
}
