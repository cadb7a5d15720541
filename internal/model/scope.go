package model

// Scope carries the authenticated identity through a request.
type Scope struct {
	UserID string
	Email  string
}
