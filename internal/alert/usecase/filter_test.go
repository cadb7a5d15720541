package usecase

import (
	"reflect"
	"testing"
	"time"

	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/model"
)

func record(title, date string, source model.Source, severity model.Severity) model.AlertRecord {
	return model.AlertRecord{
		Title:        title,
		Date:         date,
		Source:       source,
		Severity:     severity,
		SourceURL:    "https://example.com/" + title,
		RecallNumber: model.IdentifierNA,
		EventID:      model.IdentifierNA,
	}
}

func titles(records []model.AlertRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Title)
	}
	return out
}

func TestApplyFiltersDateRange(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	records := []model.AlertRecord{
		record("recent", "2024-01-01", model.SourceFDA, model.SeverityLow),
		record("two-years-old", "2022-05-01", model.SourceFDA, model.SeverityLow),
		record("six-years-old", "2018-05-01", model.SourceFDA, model.SeverityLow),
		record("no-date", "", model.SourceFDA, model.SeverityLow),
		record("unknown-date", model.UnknownDate, model.SourceHealthCanada, model.SeverityLow),
	}

	tests := []struct {
		name      string
		dateRange string
		want      []string
	}{
		{"all keeps everything", alert.FilterAll, []string{"recent", "two-years-old", "six-years-old", "no-date", "unknown-date"}},
		{"empty keeps everything", "", []string{"recent", "two-years-old", "six-years-old", "no-date", "unknown-date"}},
		{"one year drops old and unparseable", alert.DateRangeOneYear, []string{"recent"}},
		{"three years", alert.DateRangeThreeYears, []string{"recent", "two-years-old"}},
		{"five years", alert.DateRangeFiveYears, []string{"recent", "two-years-old"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyFilters(records, alert.FilterSpec{DateRange: tt.dateRange}, now)
			if !reflect.DeepEqual(titles(got), tt.want) {
				t.Errorf("applyFilters() kept %v, want %v", titles(got), tt.want)
			}
		})
	}
}

func TestApplyFiltersSourceAndSeverity(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	records := []model.AlertRecord{
		record("fda-high", "2024-01-01", model.SourceFDA, model.SeverityHigh),
		record("fda-low", "2024-01-02", model.SourceFDA, model.SeverityLow),
		record("hc-high", "2024-01-03", model.SourceHealthCanada, model.SeverityHigh),
	}

	got := applyFilters(records, alert.FilterSpec{
		DateRange: alert.FilterAll,
		Source:    string(model.SourceFDA),
		Severity:  string(model.SeverityHigh),
	}, now)

	if !reflect.DeepEqual(titles(got), []string{"fda-high"}) {
		t.Errorf("applyFilters() kept %v, want only the FDA high record", titles(got))
	}
}

func TestApplyFiltersIdempotent(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	spec := alert.FilterSpec{
		DateRange: alert.DateRangeFiveYears,
		Source:    string(model.SourceFDA),
		Severity:  string(model.SeverityHigh),
	}

	records := []model.AlertRecord{
		record("keep", "2024-01-01", model.SourceFDA, model.SeverityHigh),
		record("wrong-source", "2024-01-01", model.SourceHealthCanada, model.SeverityHigh),
		record("wrong-severity", "2024-01-01", model.SourceFDA, model.SeverityLow),
		record("no-date", "", model.SourceFDA, model.SeverityHigh),
	}

	once := applyFilters(records, spec, now)
	twice := applyFilters(once, spec, now)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("applying the same filters twice changed the result: %v vs %v", titles(once), titles(twice))
	}
}

func TestSortByDateDescending(t *testing.T) {
	records := []model.AlertRecord{
		record("a", "2024-03-01", model.SourceFDA, model.SeverityLow),
		record("b", "2023-01-01", model.SourceFDA, model.SeverityLow),
		record("c", "", model.SourceHealthCanada, model.SeverityLow),
		record("d", "2024-03-01", model.SourceHealthCanada, model.SeverityLow),
	}

	sortByDateDescending(records)

	// Equal dates keep input order, unknown dates land last.
	want := []string{"a", "d", "b", "c"}
	if !reflect.DeepEqual(titles(records), want) {
		t.Errorf("sortByDateDescending() order = %v, want %v", titles(records), want)
	}
}

func TestSortDateFallback(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-01", "2024-03-01"},
		{"", fallbackSortDate},
		{model.UnknownDate, fallbackSortDate},
		{"20240301", fallbackSortDate},
	}

	for _, tt := range tests {
		if got := sortDate(tt.in); got != tt.want {
			t.Errorf("sortDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
