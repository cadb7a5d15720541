package alert

import "github.com/friendsofgo/errors"

var (
	ErrQueryTooShort = errors.New("query must be at least 2 characters")
)
