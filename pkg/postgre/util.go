package postgre

import (
	"github.com/friendsofgo/errors"
	"github.com/google/uuid"
)

// ErrInvalidUUID is returned when an identifier is not a valid UUID.
var ErrInvalidUUID = errors.New("invalid UUID")

// NewUUID generates a new random UUID string.
func NewUUID() string {
	return uuid.New().String()
}

// IsUUID validates that the given string is a well-formed UUID.
func IsUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.Wrapf(ErrInvalidUUID, "%q", id)
	}
	return nil
}
