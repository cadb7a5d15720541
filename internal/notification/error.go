package notification

import "github.com/friendsofgo/errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotOwner             = errors.New("notification belongs to another user")
)
