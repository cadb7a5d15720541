package redis

import (
	"pharmaclear-api/config"
	pkgRedis "pharmaclear-api/pkg/redis"
)

var client pkgRedis.IRedis

// Connect creates the Redis client and verifies the connection.
func Connect(cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	c, err := pkgRedis.New(pkgRedis.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err != nil {
		return nil, err
	}

	client = c
	return client, nil
}

// Disconnect closes the Redis client.
func Disconnect() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
