package config

import (
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/friendsofgo/errors"
)

// Config holds all configuration for the service.
type Config struct {
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Postgres   PostgresConfig
	Redis      RedisConfig
	MinIO      MinIOConfig
	JWT        JWTConfig
	Discord    DiscordConfig
	LLM        LLMConfig
	Sources    SourcesConfig
	Alerter    AlerterConfig
}

// HTTPServerConfig holds the HTTP server settings.
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"debug"`
}

// LoggerConfig holds the logger settings.
type LoggerConfig struct {
	Level    string `env:"LOG_LEVEL" envDefault:"debug"`
	Mode     string `env:"LOG_MODE" envDefault:"development"`
	Encoding string `env:"LOG_ENCODING" envDefault:"console"`
}

// PostgresConfig holds the PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"pharmaclear"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
}

// MinIOConfig holds the object storage settings.
type MinIOConfig struct {
	Endpoint     string `env:"MINIO_ENDPOINT"`
	AccessKey    string `env:"MINIO_ACCESS_KEY"`
	SecretKey    string `env:"MINIO_SECRET_KEY"`
	UseSSL       bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region       string `env:"MINIO_REGION"`
	ReportBucket string `env:"MINIO_REPORT_BUCKET" envDefault:"pharmaclear-reports"`
}

// JWTConfig holds the token signing settings.
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY,required"`
	Issuer    string `env:"JWT_ISSUER" envDefault:"pharmaclear-api"`
}

// DiscordConfig holds the webhook used for internal error reports.
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// LLMConfig holds the Anthropic settings for report summaries and chat.
type LLMConfig struct {
	APIKey    string `env:"ANTHROPIC_API_KEY"`
	Model     string `env:"ANTHROPIC_MODEL"`
	MaxTokens int64  `env:"ANTHROPIC_MAX_TOKENS" envDefault:"1024"`
}

// SourcesConfig holds upstream regulatory source settings.
type SourcesConfig struct {
	FDABaseURL          string        `env:"FDA_BASE_URL" envDefault:"https://api.fda.gov/drug/enforcement.json"`
	HealthCanadaBaseURL string        `env:"HEALTH_CANADA_BASE_URL" envDefault:"https://recalls-rappels.canada.ca/en/search/site"`
	FetchTimeout        time.Duration `env:"SOURCE_FETCH_TIMEOUT" envDefault:"10s"`
}

// AlerterConfig holds the background watchlist poller settings.
type AlerterConfig struct {
	PollInterval time.Duration `env:"ALERTER_POLL_INTERVAL" envDefault:"1h"`
	SeenSetTTL   time.Duration `env:"ALERTER_SEEN_SET_TTL" envDefault:"720h"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse config from environment")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return errors.Errorf("invalid http port: %d", c.HTTPServer.Port)
	}
	if c.JWT.SecretKey == "" {
		return errors.New("jwt secret key is required")
	}
	return nil
}
