package search

import "github.com/friendsofgo/errors"

var (
	ErrSearchNotFound = errors.New("saved search not found")
	ErrNotOwner       = errors.New("saved search belongs to another user")
)
