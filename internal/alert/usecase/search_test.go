package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/friendsofgo/errors"

	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/alert/source"
	"pharmaclear-api/internal/model"
	"pharmaclear-api/pkg/log"
)

type fakeSource struct {
	name    model.Source
	records []model.AlertRecord
	err     error
	delay   time.Duration
}

func (f fakeSource) Name() model.Source { return f.name }

func (f fakeSource) Fetch(ctx context.Context, query string) ([]model.AlertRecord, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func newTestUsecase(sources ...source.Source) alert.UseCase {
	return New(log.NewNoop(), time.Second, sources...)
}

func TestSearchQueryTooShort(t *testing.T) {
	uc := newTestUsecase()

	for _, query := range []string{"", "a", " a "} {
		_, err := uc.Search(context.Background(), model.Scope{}, alert.SearchInput{Query: query})
		if !errors.Is(err, alert.ErrQueryTooShort) {
			t.Errorf("Search(%q) error = %v, want ErrQueryTooShort", query, err)
		}
	}
}

func TestSearchFaultIsolation(t *testing.T) {
	fdaRecords := []model.AlertRecord{
		record("one", "2024-01-01", model.SourceFDA, model.SeverityHigh),
		record("two", "2024-02-01", model.SourceFDA, model.SeverityLow),
		record("three", "2024-03-01", model.SourceFDA, model.SeverityMedium),
	}

	uc := newTestUsecase(
		fakeSource{name: model.SourceFDA, records: fdaRecords},
		fakeSource{name: model.SourceHealthCanada, err: errors.New("connection refused")},
	)

	out, err := uc.Search(context.Background(), model.Scope{}, alert.SearchInput{Query: "ibuprofen"})
	if err != nil {
		t.Fatalf("Search() error = %v, want partial results", err)
	}
	if out.Total != 3 || len(out.Results) != 3 {
		t.Fatalf("Search() total = %d with %d results, want the 3 healthy-source records", out.Total, len(out.Results))
	}
	for _, r := range out.Results {
		if r.Source != model.SourceFDA {
			t.Errorf("unexpected record from failed source: %+v", r)
		}
	}
}

func TestSearchBothSourcesDown(t *testing.T) {
	uc := newTestUsecase(
		fakeSource{name: model.SourceFDA, err: errors.New("timeout")},
		fakeSource{name: model.SourceHealthCanada, err: errors.New("timeout")},
	)

	out, err := uc.Search(context.Background(), model.Scope{}, alert.SearchInput{Query: "ibuprofen"})
	if err != nil {
		t.Fatalf("Search() error = %v, want empty success", err)
	}
	if out.Total != 0 || len(out.Results) != 0 {
		t.Fatalf("Search() = %+v, want empty result set", out)
	}
}

func TestSearchSlowSourceTimesOut(t *testing.T) {
	fast := fakeSource{
		name:    model.SourceFDA,
		records: []model.AlertRecord{record("fast", "2024-01-01", model.SourceFDA, model.SeverityLow)},
	}
	slow := fakeSource{
		name:  model.SourceHealthCanada,
		delay: time.Second,
		records: []model.AlertRecord{
			record("slow", "2024-02-01", model.SourceHealthCanada, model.SeverityLow),
		},
	}

	uc := New(log.NewNoop(), 20*time.Millisecond, fast, slow)

	out, err := uc.Search(context.Background(), model.Scope{}, alert.SearchInput{Query: "ibuprofen"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if out.Total != 1 || out.Results[0].Title != "fast" {
		t.Fatalf("Search() = %+v, want only the fast source's record", out)
	}
}

func TestSearchMergesAndSorts(t *testing.T) {
	uc := newTestUsecase(
		fakeSource{name: model.SourceFDA, records: []model.AlertRecord{
			record("older-fda", "2023-05-01", model.SourceFDA, model.SeverityHigh),
			record("newest-fda", "2024-04-01", model.SourceFDA, model.SeverityLow),
		}},
		fakeSource{name: model.SourceHealthCanada, records: []model.AlertRecord{
			record("hc-unknown", model.UnknownDate, model.SourceHealthCanada, model.SeverityLow),
			record("mid-hc", "2023-12-01", model.SourceHealthCanada, model.SeverityMedium),
		}},
	)

	out, err := uc.Search(context.Background(), model.Scope{}, alert.SearchInput{Query: "ibuprofen"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	want := []string{"newest-fda", "mid-hc", "older-fda", "hc-unknown"}
	got := titles(out.Results)
	if len(got) != len(want) {
		t.Fatalf("Search() returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Search() order = %v, want %v", got, want)
		}
	}
	if out.Total != 4 {
		t.Errorf("Search() total = %d, want 4", out.Total)
	}
}

func TestSearchFilterEndToEnd(t *testing.T) {
	uc := newTestUsecase(
		fakeSource{name: model.SourceFDA, records: []model.AlertRecord{
			record("fda-high-new", "2024-03-01", model.SourceFDA, model.SeverityHigh),
			record("fda-high-old", "2023-01-01", model.SourceFDA, model.SeverityHigh),
			record("fda-low", "2024-02-01", model.SourceFDA, model.SeverityLow),
		}},
		fakeSource{name: model.SourceHealthCanada, records: []model.AlertRecord{
			record("hc-high", "2024-01-01", model.SourceHealthCanada, model.SeverityHigh),
		}},
	)

	out, err := uc.Search(context.Background(), model.Scope{}, alert.SearchInput{
		Query: "ibuprofen",
		Filter: alert.FilterSpec{
			DateRange: alert.FilterAll,
			Source:    string(model.SourceFDA),
			Severity:  string(model.SeverityHigh),
		},
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	want := []string{"fda-high-new", "fda-high-old"}
	got := titles(out.Results)
	if out.Total != 2 || len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Search() = %v (total %d), want %v sorted descending", got, out.Total, want)
	}
}
