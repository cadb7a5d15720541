package model

import "time"

// Notification records a watchlist match delivered to a user.
type Notification struct {
	ID            string
	UserID        string
	Keyword       string
	AlertTitle    string
	AlertSource   string
	AlertSeverity string
	AlertURL      string
	IsRead        bool
	CreatedAt     time.Time
}
