package httpserver

import (
	"database/sql"

	"github.com/friendsofgo/errors"
	"github.com/gin-gonic/gin"

	"pharmaclear-api/config"
	wsDelivery "pharmaclear-api/internal/notification/delivery/websocket"
	"pharmaclear-api/pkg/discord"
	"pharmaclear-api/pkg/llm"
	"pharmaclear-api/pkg/log"
	"pharmaclear-api/pkg/minio"
	pkgRedis "pharmaclear-api/pkg/redis"
	"pharmaclear-api/pkg/scope"
)

// HTTPServer wires the API's dependencies. New only builds and validates;
// Run (httpserver.go) starts background services and serves.
type HTTPServer struct {
	gin  *gin.Engine
	l    log.Logger
	port int
	mode string

	db         *sql.DB
	redis      pkgRedis.IRedis
	storage    minio.MinIO
	llm        llm.ILLM
	discord    discord.IDiscord
	jwtManager scope.Manager

	sources      config.SourcesConfig
	reportBucket string

	hub        *wsDelivery.Hub
	subscriber wsDelivery.Subscriber
}

type Config struct {
	Port int
	Mode string

	DB         *sql.DB
	Redis      pkgRedis.IRedis
	Storage    minio.MinIO
	LLM        llm.ILLM
	Discord    discord.IDiscord
	JWTManager scope.Manager

	Sources      config.SourcesConfig
	ReportBucket string
}

func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:  gin.New(),
		l:    l,
		port: cfg.Port,
		mode: cfg.Mode,

		db:         cfg.DB,
		redis:      cfg.Redis,
		storage:    cfg.Storage,
		llm:        cfg.LLM,
		discord:    cfg.Discord,
		jwtManager: cfg.JWTManager,

		sources:      cfg.Sources,
		reportBucket: cfg.ReportBucket,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.redis == nil {
		return errors.New("redis client is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	return nil
}
