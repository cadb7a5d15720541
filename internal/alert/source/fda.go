package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pharmaclear-api/internal/model"

	"github.com/friendsofgo/errors"
)

const (
	// The enforcement API is only queried over a fixed trailing window,
	// so FDA results older than this can never appear regardless of the
	// date filter the caller picks later.
	fdaLookbackDays = 180
	fdaPageLimit    = 100

	fdaRecallNumberURL = "https://www.accessdata.fda.gov/scripts/ires/index.cfm?action=query.search&recall_number=%s"
	fdaEventIDURL      = "https://www.accessdata.fda.gov/scripts/ires/index.cfm?action=query.search&event_id=%s"
	fdaListingURL      = "https://www.fda.gov/safety/recalls-market-withdrawals-safety-alerts"
)

// FDA queries the openFDA drug enforcement API.
type FDA struct {
	client  *http.Client
	baseURL string
	now     func() time.Time
}

func NewFDA(client *http.Client, baseURL string) *FDA {
	return &FDA{
		client:  client,
		baseURL: baseURL,
		now:     time.Now,
	}
}

func (f *FDA) Name() model.Source {
	return model.SourceFDA
}

type fdaEnvelope struct {
	Results []fdaRecall `json:"results"`
}

type fdaRecall struct {
	ProductDescription   string `json:"product_description"`
	ReasonForRecall      string `json:"reason_for_recall"`
	RecallInitiationDate string `json:"recall_initiation_date"`
	Classification       string `json:"classification"`
	EventID              string `json:"event_id"`
	RecallNumber         string `json:"recall_number"`
}

// Fetch queries enforcement reports matching the query within the trailing
// window and maps each one into a canonical record.
func (f *FDA) Fetch(ctx context.Context, query string) ([]model.AlertRecord, error) {
	end := f.now()
	start := end.AddDate(0, 0, -fdaLookbackDays)

	q := url.QueryEscape(query)
	searchExpr := fmt.Sprintf(
		"report_date:[%s+TO+%s]+AND+(product_description:%s+OR+reason_for_recall:%s)",
		start.Format("20060102"), end.Format("20060102"), q, q,
	)
	reqURL := fmt.Sprintf("%s?search=%s&limit=%d", f.baseURL, searchExpr, fdaPageLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build fda request")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call fda api")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("fda api returned status %d", resp.StatusCode)
	}

	var envelope fdaEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "decode fda response")
	}

	records := make([]model.AlertRecord, 0, len(envelope.Results))
	for _, recall := range envelope.Results {
		records = append(records, model.AlertRecord{
			Title:        fdaTitle(recall.ProductDescription),
			Description:  recall.ReasonForRecall,
			Date:         formatFDADate(recall.RecallInitiationDate),
			Source:       model.SourceFDA,
			Severity:     fdaSeverity(recall.Classification),
			SourceURL:    fdaSourceURL(recall.RecallNumber, recall.EventID),
			RecallNumber: orNA(recall.RecallNumber),
			EventID:      orNA(recall.EventID),
		})
	}
	return records, nil
}

// fdaTitle truncates the product description at the first sentence boundary.
func fdaTitle(productDescription string) string {
	title := productDescription
	if idx := strings.Index(title, "."); idx >= 0 {
		title = title[:idx]
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "No Title"
	}
	return title
}

// fdaSeverity maps a classification code to a severity. The match is a
// strict equality, so an unrecognized classification becomes low.
func fdaSeverity(classification string) model.Severity {
	switch classification {
	case "Class I":
		return model.SeverityHigh
	case "Class II":
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

// fdaSourceURL picks exactly one link form, in priority order: recall
// number lookup, then event id lookup, then the generic listing page.
func fdaSourceURL(recallNumber, eventID string) string {
	if recallNumber != "" {
		return fmt.Sprintf(fdaRecallNumberURL, url.QueryEscape(recallNumber))
	}
	if eventID != "" {
		return fmt.Sprintf(fdaEventIDURL, url.QueryEscape(eventID))
	}
	return fdaListingURL
}

// formatFDADate reshapes an 8-digit YYYYMMDD date to YYYY-MM-DD. Anything
// else passes through unchanged rather than raising.
func formatFDADate(date string) string {
	if len(date) != 8 {
		return date
	}
	return date[:4] + "-" + date[4:6] + "-" + date[6:8]
}

func orNA(value string) string {
	if value == "" {
		return model.IdentifierNA
	}
	return value
}
