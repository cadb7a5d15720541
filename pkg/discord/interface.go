package discord

import "context"

// IDiscord posts operational messages to a Discord webhook.
// Used by pkg/response to report unexpected internal errors.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
	Close() error
}
