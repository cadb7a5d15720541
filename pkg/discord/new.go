package discord

import (
	"errors"
	"net/http"
	"time"

	"pharmaclear-api/pkg/log"
)

var errWebhookRequired = errors.New("discord webhook id and token are required")

// DefaultConfig returns the default Discord config.
func DefaultConfig() Config {
	return Config{
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
		RetryDelay: DefaultRetryDelay,
		Username:   DefaultUsername,
	}
}

// New builds a webhook client. A nil client is returned without error when the
// webhook is not configured, so callers can treat reporting as optional.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || (webhook.ID == "" && webhook.Token == "") {
		return nil, nil
	}
	if webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}

	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: &webhookInfo{id: webhook.ID, token: webhook.Token},
		config:  cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}, nil
}
