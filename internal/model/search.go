package model

import "time"

// SavedSearch is a query plus filters a user stored for reuse.
type SavedSearch struct {
	ID        string
	UserID    string
	Query     string
	Source    string
	Severity  string
	DateRange string
	CreatedAt time.Time
}
