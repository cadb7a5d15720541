package main

import (
	"context"
	"fmt"

	"pharmaclear-api/config"
	"pharmaclear-api/config/minio"
	"pharmaclear-api/config/postgre"
	"pharmaclear-api/config/redis"
	"pharmaclear-api/internal/httpserver"
	"pharmaclear-api/pkg/discord"
	"pharmaclear-api/pkg/llm"
	"pharmaclear-api/pkg/log"
	"pharmaclear-api/pkg/scope"
)

// @Name PharmaClear API
// @description Pharmaceutical recall aggregation and compliance API.
// @version 1
// @host localhost:8080
// @schemes http
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

	ctx := context.Background()

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect()
	logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if err := postgre.Migrate(ctx, postgresDB); err != nil {
		logger.Error(ctx, "Failed to run migrations: ", err)
		return
	}

	redisClient, err := redis.Connect(cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redis.Disconnect()
	logger.Infof(ctx, "Redis connected to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Object storage is optional; report downloads are disabled without it.
	minioClient, err := minio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Warnf(ctx, "MinIO unavailable, report storage disabled: %v", err)
	} else if minioClient != nil {
		defer minio.Disconnect()
		logger.Infof(ctx, "MinIO connected to %s", cfg.MinIO.Endpoint)
	}

	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Discord: ", err)
		return
	}

	// The LLM is optional; summaries and chat degrade without it.
	var llmClient llm.ILLM
	if cfg.LLM.APIKey != "" {
		llmClient, err = llm.NewAnthropic(llm.Config{
			APIKey:    cfg.LLM.APIKey,
			Model:     cfg.LLM.Model,
			MaxTokens: cfg.LLM.MaxTokens,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize LLM client: ", err)
			return
		}
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		DB:      postgresDB,
		Redis:   redisClient,
		Storage: minioClient,

		LLM:        llmClient,
		Discord:    discordClient,
		JWTManager: scope.NewManager(cfg.JWT.SecretKey, cfg.JWT.Issuer),

		Sources:      cfg.Sources,
		ReportBucket: cfg.MinIO.ReportBucket,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
