package discord

import (
	"net/http"
	"time"

	"pharmaclear-api/pkg/log"
)

// Config holds webhook client behaviour settings.
type Config struct {
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

// DiscordWebhook identifies a webhook endpoint.
type DiscordWebhook struct {
	ID    string
	Token string
}

type webhookInfo struct {
	id    string
	token string
}

// WebhookPayload is the wire format for a webhook message.
type WebhookPayload struct {
	Username string `json:"username,omitempty"`
	Content  string `json:"content"`
}

type discordImpl struct {
	l       log.Logger
	webhook *webhookInfo
	config  Config
	client  *http.Client
}
