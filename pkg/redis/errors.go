package redis

import (
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

var (
	ErrHostRequired = errors.New("redis host is required")
	ErrInvalidPort  = errors.New("redis port must be between 1 and 65535")

	// ErrNil is returned by Get when the key does not exist.
	ErrNil = goredis.Nil
)
