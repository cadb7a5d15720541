package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pharmaclear-api/config"
	"pharmaclear-api/config/postgre"
	"pharmaclear-api/config/redis"
	"pharmaclear-api/internal/alert/source"
	alertUsecase "pharmaclear-api/internal/alert/usecase"
	"pharmaclear-api/internal/alerter"
	notificationPostgre "pharmaclear-api/internal/notification/repository/postgre"
	notificationUsecase "pharmaclear-api/internal/notification/usecase"
	watchlistPostgre "pharmaclear-api/internal/watchlist/repository/postgre"
	"pharmaclear-api/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect()
	logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	redisClient, err := redis.Connect(cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redis.Disconnect()
	logger.Infof(ctx, "Redis connected to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	httpClient := &http.Client{Timeout: cfg.Sources.FetchTimeout}
	alertUC := alertUsecase.New(logger, cfg.Sources.FetchTimeout,
		source.NewFDA(httpClient, cfg.Sources.FDABaseURL),
		source.NewHealthCanada(httpClient, cfg.Sources.HealthCanadaBaseURL),
	)

	notificationRepo := notificationPostgre.New(logger, postgresDB)
	notificationUC := notificationUsecase.New(logger, notificationRepo, redisClient)
	watchlistRepo := watchlistPostgre.New(logger, postgresDB)

	poller := alerter.New(
		logger,
		alertUC,
		notificationUC,
		watchlistRepo,
		redisClient,
		cfg.Alerter.PollInterval,
		cfg.Alerter.SeenSetTTL,
	)
	poller.Run(ctx)
}
