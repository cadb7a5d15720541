package model

import "time"

// User is a registered account.
type User struct {
	ID             string
	Email          string
	HashedPassword string
	FullName       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
