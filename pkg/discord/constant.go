package discord

import "time"

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 2 * time.Second
	DefaultUsername   = "PharmaClear Service"

	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"
)
