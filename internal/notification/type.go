package notification

import (
	"pharmaclear-api/internal/model"
	"pharmaclear-api/pkg/paginator"
)

// PushChannel is the Redis channel notifications are published on for
// real-time delivery.
const PushChannel = "pharmaclear:notifications"

type CreateInput struct {
	UserID        string
	Keyword       string
	AlertTitle    string
	AlertSource   string
	AlertSeverity string
	AlertURL      string
}

type CreateOptions struct {
	ID            string
	UserID        string
	Keyword       string
	AlertTitle    string
	AlertSource   string
	AlertSeverity string
	AlertURL      string
}

type ListOptions struct {
	UserID     string
	UnreadOnly bool
	Limit      int64
	Offset     int64
}

type ListInput struct {
	PagQuery   paginator.PaginateQuery
	UnreadOnly bool
}

type ListOutput struct {
	Notifications []model.Notification
	Paginator     paginator.Paginator
}

// PushMessage is the payload published on PushChannel.
type PushMessage struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Keyword       string `json:"keyword"`
	AlertTitle    string `json:"alert_title"`
	AlertSource   string `json:"alert_source"`
	AlertSeverity string `json:"alert_severity"`
	AlertURL      string `json:"alert_url"`
	CreatedAt     string `json:"created_at"`
}
