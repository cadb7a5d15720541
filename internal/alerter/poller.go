package alerter

import (
	"context"
	"fmt"
	"time"

	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/notification"
	"pharmaclear-api/internal/watchlist"
	"pharmaclear-api/pkg/log"
	"pharmaclear-api/pkg/redis"
)

// Poller periodically re-runs every watchlist keyword through the alert
// search and creates a notification for each result not seen before. The
// seen set lives in Redis so restarts and multiple poller instances do
// not re-notify.
type Poller struct {
	l              log.Logger
	alertUC        alert.UseCase
	notificationUC notification.UseCase
	watchlistRepo  watchlist.Repository
	redis          redis.IRedis
	interval       time.Duration
	seenTTL        time.Duration
}

func New(
	l log.Logger,
	alertUC alert.UseCase,
	notificationUC notification.UseCase,
	watchlistRepo watchlist.Repository,
	redisClient redis.IRedis,
	interval time.Duration,
	seenTTL time.Duration,
) *Poller {
	return &Poller{
		l:              l,
		alertUC:        alertUC,
		notificationUC: notificationUC,
		watchlistRepo:  watchlistRepo,
		redis:          redisClient,
		interval:       interval,
		seenTTL:        seenTTL,
	}
}

// Run executes one check immediately, then on every tick until the
// context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	p.l.Infof(ctx, "alerter started, interval %s", p.interval)

	p.RunOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.RunOnce(ctx)
		case <-ctx.Done():
			p.l.Infof(ctx, "alerter stopped")
			return
		}
	}
}

// RunOnce checks every watchlist item once. Failures are isolated per
// item; one bad keyword never aborts the sweep.
func (p *Poller) RunOnce(ctx context.Context) {
	items, err := p.watchlistRepo.ListAll(ctx)
	if err != nil {
		p.l.Errorf(ctx, "internal.alerter.RunOnce: %v", err)
		return
	}

	for _, item := range items {
		if ctx.Err() != nil {
			return
		}
		if err := p.checkItem(ctx, item); err != nil {
			p.l.Errorf(ctx, "internal.alerter.RunOnce: item %s: %v", item.ID, err)
		}
	}
}

func (p *Poller) checkItem(ctx context.Context, item model.WatchlistItem) error {
	out, err := p.alertUC.Search(ctx, model.Scope{UserID: item.UserID}, alert.SearchInput{
		Query: item.Keyword,
	})
	if err != nil {
		return err
	}

	key := seenKey(item.UserID, item.Keyword)
	for _, record := range out.Results {
		member := recordFingerprint(record)

		seen, err := p.redis.SIsMember(ctx, key, member)
		if err != nil {
			return err
		}
		if seen {
			continue
		}

		if _, err := p.notificationUC.Create(ctx, notification.CreateInput{
			UserID:        item.UserID,
			Keyword:       item.Keyword,
			AlertTitle:    record.Title,
			AlertSource:   string(record.Source),
			AlertSeverity: string(record.Severity),
			AlertURL:      record.SourceURL,
		}); err != nil {
			return err
		}

		// Mark seen only after the notification is persisted, so a
		// failed create is retried next tick.
		if _, err := p.redis.SAdd(ctx, key, member); err != nil {
			return err
		}
	}

	if p.seenTTL > 0 {
		if err := p.redis.Expire(ctx, key, p.seenTTL); err != nil {
			p.l.Warnf(ctx, "internal.alerter.checkItem: expire %s: %v", key, err)
		}
	}

	return nil
}

func seenKey(userID, keyword string) string {
	return fmt.Sprintf("pharmaclear:alerter:seen:%s:%s", userID, keyword)
}

// recordFingerprint identifies an alert across polls. The recall number
// is stable for FDA records; scraped records fall back to URL and title.
func recordFingerprint(record model.AlertRecord) string {
	if record.RecallNumber != "" && record.RecallNumber != model.IdentifierNA {
		return string(record.Source) + "|" + record.RecallNumber
	}
	return string(record.Source) + "|" + record.SourceURL + "|" + record.Title
}
