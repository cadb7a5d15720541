package watchlist

import "github.com/friendsofgo/errors"

var (
	ErrEmptyKeyword = errors.New("keyword must not be empty")
	ErrDuplicate    = errors.New("keyword already on watchlist")
	ErrItemNotFound = errors.New("watchlist item not found")
	ErrNotOwner     = errors.New("watchlist item belongs to another user")
)
