package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmaclear-api/internal/model"
)

func TestFDASeverity(t *testing.T) {
	tests := []struct {
		classification string
		want           model.Severity
	}{
		{"Class I", model.SeverityHigh},
		{"Class II", model.SeverityMedium},
		{"Class III", model.SeverityLow},
		{"", model.SeverityLow},
		{"class i", model.SeverityLow},
		{"Class I recall", model.SeverityLow},
	}

	for _, tt := range tests {
		if got := fdaSeverity(tt.classification); got != tt.want {
			t.Errorf("fdaSeverity(%q) = %q, want %q", tt.classification, got, tt.want)
		}
	}
}

func TestFormatFDADate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20240115", "2024-01-15"},
		{"2024", "2024"},
		{"", ""},
		{"202401150", "202401150"},
	}

	for _, tt := range tests {
		if got := formatFDADate(tt.in); got != tt.want {
			t.Errorf("formatFDADate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFDASourceURL(t *testing.T) {
	tests := []struct {
		name         string
		recallNumber string
		eventID      string
		want         string
	}{
		{
			name:         "recall number wins",
			recallNumber: "D-123-2024",
			eventID:      "98765",
			want:         "https://www.accessdata.fda.gov/scripts/ires/index.cfm?action=query.search&recall_number=D-123-2024",
		},
		{
			name:    "event id fallback",
			eventID: "98765",
			want:    "https://www.accessdata.fda.gov/scripts/ires/index.cfm?action=query.search&event_id=98765",
		},
		{
			name: "generic listing fallback",
			want: "https://www.fda.gov/safety/recalls-market-withdrawals-safety-alerts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fdaSourceURL(tt.recallNumber, tt.eventID); got != tt.want {
				t.Errorf("fdaSourceURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFDAFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{
					"product_description": "Ibuprofen 200mg Tablets. 100 count bottles.",
					"reason_for_recall": "Potential contamination",
					"recall_initiation_date": "20240115",
					"classification": "Class I",
					"event_id": "98765",
					"recall_number": "D-123-2024"
				},
				{
					"product_description": "",
					"reason_for_recall": "Mislabeled",
					"recall_initiation_date": "bad",
					"classification": "Class III",
					"event_id": "",
					"recall_number": ""
				}
			]
		}`))
	}))
	defer srv.Close()

	fda := NewFDA(srv.Client(), srv.URL)

	records, err := fda.Fetch(context.Background(), "ibuprofen")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Fetch() returned %d records, want 2", len(records))
	}

	first := records[0]
	if first.Title != "Ibuprofen 200mg Tablets" {
		t.Errorf("title = %q, want first sentence of product description", first.Title)
	}
	if first.Date != "2024-01-15" {
		t.Errorf("date = %q, want 2024-01-15", first.Date)
	}
	if first.Severity != model.SeverityHigh {
		t.Errorf("severity = %q, want high", first.Severity)
	}
	if first.Source != model.SourceFDA {
		t.Errorf("source = %q, want FDA", first.Source)
	}
	if first.RecallNumber != "D-123-2024" || first.EventID != "98765" {
		t.Errorf("identifiers = %q/%q, want passed through", first.RecallNumber, first.EventID)
	}

	second := records[1]
	if second.Title != "No Title" {
		t.Errorf("empty product description title = %q, want No Title", second.Title)
	}
	if second.Date != "bad" {
		t.Errorf("malformed date = %q, want passed through unchanged", second.Date)
	}
	if second.Severity != model.SeverityLow {
		t.Errorf("severity = %q, want low", second.Severity)
	}
	if second.RecallNumber != model.IdentifierNA || second.EventID != model.IdentifierNA {
		t.Errorf("missing identifiers = %q/%q, want N/A sentinels", second.RecallNumber, second.EventID)
	}
	if second.SourceURL == "" {
		t.Error("source url must always be populated")
	}
}

func TestFDAFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	fda := NewFDA(srv.Client(), srv.URL)

	if _, err := fda.Fetch(context.Background(), "ibuprofen"); err == nil {
		t.Fatal("Fetch() expected error on non-200 status")
	}
}

func TestFDAFetchMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	fda := NewFDA(srv.Client(), srv.URL)

	if _, err := fda.Fetch(context.Background(), "ibuprofen"); err == nil {
		t.Fatal("Fetch() expected error on malformed body")
	}
}
