package http

import (
	"time"

	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/notification"
	"pharmaclear-api/pkg/paginator"
)

type listReq struct {
	paginator.PaginateQuery
	UnreadOnly bool `form:"unread_only"`
}

type notificationItem struct {
	ID            string `json:"id"`
	Keyword       string `json:"keyword"`
	AlertTitle    string `json:"alert_title"`
	AlertSource   string `json:"alert_source"`
	AlertSeverity string `json:"alert_severity"`
	AlertURL      string `json:"alert_url"`
	IsRead        bool   `json:"is_read"`
	CreatedAt     string `json:"created_at"`
}

func newNotificationItem(n model.Notification) notificationItem {
	return notificationItem{
		ID:            n.ID,
		Keyword:       n.Keyword,
		AlertTitle:    n.AlertTitle,
		AlertSource:   n.AlertSource,
		AlertSeverity: n.AlertSeverity,
		AlertURL:      n.AlertURL,
		IsRead:        n.IsRead,
		CreatedAt:     n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type listResp struct {
	Items []notificationItem          `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func newListResp(out notification.ListOutput) listResp {
	items := make([]notificationItem, 0, len(out.Notifications))
	for _, n := range out.Notifications {
		items = append(items, newNotificationItem(n))
	}
	return listResp{
		Items: items,
		Meta:  out.Paginator.ToResponse(),
	}
}
