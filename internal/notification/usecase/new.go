package usecase

import (
	"pharmaclear-api/internal/notification"
	"pharmaclear-api/pkg/log"
	"pharmaclear-api/pkg/redis"
)

type implUsecase struct {
	l     log.Logger
	repo  notification.Repository
	redis redis.IRedis
}

// New creates the notification usecase. The Redis client may be nil, in
// which case notifications are persisted but not pushed in real time.
func New(l log.Logger, repo notification.Repository, redisClient redis.IRedis) notification.UseCase {
	return &implUsecase{
		l:     l,
		repo:  repo,
		redis: redisClient,
	}
}
