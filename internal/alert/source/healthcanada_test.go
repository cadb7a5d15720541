package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmaclear-api/internal/model"
)

const hcSearchPage = `
<html><body>
<div class="views-row">
  <h3><a href="/en/alert-recall/example-recall-1">Acme Pain Relief recalled (Type I)</a></h3>
  <div class="views-field-field-date">Recalls and safety alerts | 2024-03-01</div>
  <div class="views-field-body"><p>Product may contain undeclared allergens.</p><p>Second paragraph ignored.</p></div>
</div>
<div class="views-row">
  <div class="views-field-field-date">Recalls and safety alerts | 2024-02-01</div>
</div>
<div class="views-row">
  <h3><a href="https://example.com/absolute">Vitamin Syrup advisory (Type II)</a></h3>
</div>
<div class="views-row">
  <h3><a href="/en/alert-recall/example-recall-3">Cough Syrup labelling correction</a></h3>
  <div class="views-field-field-date">no separator here</div>
</div>
</body></html>`

func TestHealthCanadaFetch(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(hcSearchPage))
	}))
	defer srv.Close()

	hc := NewHealthCanada(srv.Client(), srv.URL)

	records, err := hc.Fetch(context.Background(), "syrup")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotUserAgent != browserUserAgent {
		t.Errorf("user agent = %q, want browser identifier", gotUserAgent)
	}

	// The titleless block is skipped entirely.
	if len(records) != 3 {
		t.Fatalf("Fetch() returned %d records, want 3", len(records))
	}

	first := records[0]
	if first.Title != "Acme Pain Relief recalled (Type I)" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Date != "2024-03-01" {
		t.Errorf("date = %q, want substring after last separator", first.Date)
	}
	if first.Description != "Product may contain undeclared allergens." {
		t.Errorf("description = %q, want first paragraph only", first.Description)
	}
	if first.Severity != model.SeverityHigh {
		t.Errorf("severity = %q, want high for Type I", first.Severity)
	}
	if first.SourceURL != srv.URL+"/en/alert-recall/example-recall-1" {
		t.Errorf("source url = %q, want origin-prefixed link", first.SourceURL)
	}
	if first.RecallNumber != model.IdentifierNA || first.EventID != model.IdentifierNA {
		t.Errorf("identifiers = %q/%q, want N/A sentinels", first.RecallNumber, first.EventID)
	}
	if first.Source != model.SourceHealthCanada {
		t.Errorf("source = %q, want Health Canada", first.Source)
	}

	second := records[1]
	if second.Date != model.UnknownDate {
		t.Errorf("date = %q, want %q when the date element is absent", second.Date, model.UnknownDate)
	}
	if second.Description != "" {
		t.Errorf("description = %q, want empty when absent", second.Description)
	}
	if second.Severity != model.SeverityMedium {
		t.Errorf("severity = %q, want medium for Type II", second.Severity)
	}
	if second.SourceURL != "https://example.com/absolute" {
		t.Errorf("source url = %q, want absolute href untouched", second.SourceURL)
	}

	third := records[2]
	if third.Date != "no separator here" {
		t.Errorf("date = %q, want whole text when no separator", third.Date)
	}
	if third.Severity != model.SeverityLow {
		t.Errorf("severity = %q, want low without a type label", third.Severity)
	}
}

func TestHealthCanadaFetchEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>nothing here</p></body></html>"))
	}))
	defer srv.Close()

	hc := NewHealthCanada(srv.Client(), srv.URL)

	records, err := hc.Fetch(context.Background(), "syrup")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("Fetch() returned %d records, want 0", len(records))
	}
}

func TestHealthCanadaFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	hc := NewHealthCanada(srv.Client(), srv.URL)

	if _, err := hc.Fetch(context.Background(), "syrup"); err == nil {
		t.Fatal("Fetch() expected error on non-200 status")
	}
}

func TestHealthCanadaSeverity(t *testing.T) {
	tests := []struct {
		title string
		want  model.Severity
	}{
		{"Product recall (Type I)", model.SeverityHigh},
		{"Product recall (Type II)", model.SeverityMedium},
		{"Product recall (Type III)", model.SeverityLow},
		{"Product recall", model.SeverityLow},
	}

	for _, tt := range tests {
		if got := healthCanadaSeverity(tt.title); got != tt.want {
			t.Errorf("healthCanadaSeverity(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
