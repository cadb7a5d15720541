package alerter

import (
	"context"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/notification"
	"pharmaclear-api/internal/watchlist"
	"pharmaclear-api/pkg/log"
)

type fakeAlertUC struct {
	results map[string][]model.AlertRecord
}

func (f fakeAlertUC) Search(ctx context.Context, sc model.Scope, input alert.SearchInput) (alert.SearchOutput, error) {
	records := f.results[input.Query]
	return alert.SearchOutput{Results: records, Total: len(records)}, nil
}

type fakeNotificationUC struct {
	mu      sync.Mutex
	created []notification.CreateInput
}

func (f *fakeNotificationUC) Create(ctx context.Context, input notification.CreateInput) (model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, input)
	return model.Notification{ID: "n", UserID: input.UserID}, nil
}

func (f *fakeNotificationUC) List(ctx context.Context, sc model.Scope, input notification.ListInput) (notification.ListOutput, error) {
	return notification.ListOutput{}, nil
}

func (f *fakeNotificationUC) MarkRead(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (f *fakeNotificationUC) MarkAllRead(ctx context.Context, sc model.Scope) error {
	return nil
}

type fakeWatchlistRepo struct {
	items []model.WatchlistItem
}

func (f fakeWatchlistRepo) Create(ctx context.Context, opts watchlist.CreateOptions) (model.WatchlistItem, error) {
	return model.WatchlistItem{}, nil
}

func (f fakeWatchlistRepo) ListByUser(ctx context.Context, userID string) ([]model.WatchlistItem, error) {
	return nil, nil
}

func (f fakeWatchlistRepo) ListAll(ctx context.Context) ([]model.WatchlistItem, error) {
	return f.items, nil
}

func (f fakeWatchlistRepo) GetByID(ctx context.Context, id string) (model.WatchlistItem, error) {
	return model.WatchlistItem{}, watchlist.ErrItemNotFound
}

func (f fakeWatchlistRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeRedis struct {
	mu   sync.Mutex
	sets map[string]map[string]bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{sets: make(map[string]map[string]bool)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (f *fakeRedis) Delete(ctx context.Context, keys ...string) error    { return nil }
func (f *fakeRedis) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}

func (f *fakeRedis) SAdd(ctx context.Context, key string, members ...interface{}) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sets[key] == nil {
		f.sets[key] = make(map[string]bool)
	}
	var added int64
	for _, m := range members {
		s := m.(string)
		if !f.sets[key][s] {
			f.sets[key][s] = true
			added++
		}
	}
	return added, nil
}

func (f *fakeRedis) SIsMember(ctx context.Context, key string, member interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets[key][member.(string)], nil
}

func (f *fakeRedis) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }
func (f *fakeRedis) Publish(ctx context.Context, channel string, message interface{}) error {
	return nil
}
func (f *fakeRedis) Subscribe(ctx context.Context, channels ...string) *goredis.PubSub { return nil }
func (f *fakeRedis) Close() error                                                     { return nil }
func (f *fakeRedis) Ping(ctx context.Context) error                                   { return nil }

func TestPollerDeduplicatesAcrossTicks(t *testing.T) {
	records := []model.AlertRecord{
		{
			Title:        "Ibuprofen recall",
			Source:       model.SourceFDA,
			Severity:     model.SeverityHigh,
			SourceURL:    "https://example.com/1",
			RecallNumber: "D-123-2024",
			EventID:      "98765",
		},
		{
			Title:        "Ibuprofen advisory",
			Source:       model.SourceHealthCanada,
			Severity:     model.SeverityMedium,
			SourceURL:    "https://example.com/2",
			RecallNumber: model.IdentifierNA,
			EventID:      model.IdentifierNA,
		},
	}

	notifications := &fakeNotificationUC{}
	poller := New(
		log.NewNoop(),
		fakeAlertUC{results: map[string][]model.AlertRecord{"ibuprofen": records}},
		notifications,
		fakeWatchlistRepo{items: []model.WatchlistItem{
			{ID: "w1", UserID: "u1", Keyword: "ibuprofen"},
		}},
		newFakeRedis(),
		time.Hour,
		0,
	)

	ctx := context.Background()

	poller.RunOnce(ctx)
	if len(notifications.created) != 2 {
		t.Fatalf("first sweep created %d notifications, want 2", len(notifications.created))
	}

	// Same results on the next tick must not re-notify.
	poller.RunOnce(ctx)
	if len(notifications.created) != 2 {
		t.Fatalf("second sweep created %d notifications total, want still 2", len(notifications.created))
	}
}

func TestPollerNotifiesNewRecordsOnly(t *testing.T) {
	first := model.AlertRecord{
		Title:        "Old recall",
		Source:       model.SourceFDA,
		SourceURL:    "https://example.com/old",
		RecallNumber: "D-1-2024",
	}
	second := model.AlertRecord{
		Title:        "New recall",
		Source:       model.SourceFDA,
		SourceURL:    "https://example.com/new",
		RecallNumber: "D-2-2024",
	}

	alertUC := fakeAlertUC{results: map[string][]model.AlertRecord{
		"aspirin": {first},
	}}
	notifications := &fakeNotificationUC{}
	poller := New(
		log.NewNoop(),
		alertUC,
		notifications,
		fakeWatchlistRepo{items: []model.WatchlistItem{
			{ID: "w1", UserID: "u1", Keyword: "aspirin"},
		}},
		newFakeRedis(),
		time.Hour,
		0,
	)

	ctx := context.Background()

	poller.RunOnce(ctx)
	if len(notifications.created) != 1 {
		t.Fatalf("first sweep created %d notifications, want 1", len(notifications.created))
	}

	alertUC.results["aspirin"] = []model.AlertRecord{first, second}
	poller.RunOnce(ctx)
	if len(notifications.created) != 2 {
		t.Fatalf("after new record, %d notifications total, want 2", len(notifications.created))
	}
	if notifications.created[1].AlertTitle != "New recall" {
		t.Errorf("second notification title = %q, want the new record", notifications.created[1].AlertTitle)
	}
}

func TestRecordFingerprint(t *testing.T) {
	withRecall := model.AlertRecord{Source: model.SourceFDA, RecallNumber: "D-1", SourceURL: "u", Title: "t"}
	withoutRecall := model.AlertRecord{Source: model.SourceHealthCanada, RecallNumber: model.IdentifierNA, SourceURL: "u", Title: "t"}

	if recordFingerprint(withRecall) == recordFingerprint(withoutRecall) {
		t.Error("fingerprints must differ between recall-numbered and scraped records")
	}
	if recordFingerprint(withRecall) != recordFingerprint(withRecall) {
		t.Error("fingerprint must be deterministic")
	}
}
