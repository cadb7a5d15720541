package source

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"pharmaclear-api/internal/model"

	"github.com/PuerkitoBio/goquery"
	"github.com/friendsofgo/errors"
)

// The recalls portal rejects default client identifiers, so requests go
// out with a realistic browser user-agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Selectors for the recalls portal's search results. The markup is Drupal
// views output; a structural change upstream only requires updating these.
const (
	hcResultBlockSelector = "div.views-row"
	hcTitleSelector       = "h3 a"
	hcDateSelector        = "div.views-field-field-date"
	hcDescriptionSelector = "div.views-field-body p"
)

// HealthCanada scrapes the Health Canada recalls and safety alerts portal.
type HealthCanada struct {
	client  *http.Client
	baseURL string
	origin  string
}

func NewHealthCanada(client *http.Client, baseURL string) *HealthCanada {
	origin := ""
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		origin = u.Scheme + "://" + u.Host
	}
	return &HealthCanada{
		client:  client,
		baseURL: baseURL,
		origin:  origin,
	}
}

func (h *HealthCanada) Name() model.Source {
	return model.SourceHealthCanada
}

// Fetch scrapes the search results page for the query. Blocks without a
// title element are not genuine results and are skipped; other missing
// sub-elements degrade per item, never aborting the whole page.
func (h *HealthCanada) Fetch(ctx context.Context, query string) ([]model.AlertRecord, error) {
	reqURL := h.baseURL + "?search_api_fulltext=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build health canada request")
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call health canada portal")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("health canada portal returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "parse health canada html")
	}

	var records []model.AlertRecord
	doc.Find(hcResultBlockSelector).Each(func(_ int, block *goquery.Selection) {
		record, ok := h.parseBlock(block)
		if ok {
			records = append(records, record)
		}
	})
	return records, nil
}

func (h *HealthCanada) parseBlock(block *goquery.Selection) (model.AlertRecord, bool) {
	titleSel := block.Find(hcTitleSelector).First()
	if titleSel.Length() == 0 {
		return model.AlertRecord{}, false
	}
	title := strings.TrimSpace(titleSel.Text())
	if title == "" {
		return model.AlertRecord{}, false
	}

	return model.AlertRecord{
		Title:        title,
		Description:  h.parseDescription(block),
		Date:         h.parseDate(block),
		Source:       model.SourceHealthCanada,
		Severity:     healthCanadaSeverity(title),
		SourceURL:    h.absoluteURL(titleSel.AttrOr("href", "")),
		RecallNumber: model.IdentifierNA,
		EventID:      model.IdentifierNA,
	}, true
}

// parseDate takes the substring after the last "|" separator of the date
// element's text, e.g. "Recalls and safety alerts | 2024-03-01".
func (h *HealthCanada) parseDate(block *goquery.Selection) string {
	dateSel := block.Find(hcDateSelector).First()
	if dateSel.Length() == 0 {
		return model.UnknownDate
	}
	text := dateSel.Text()
	if idx := strings.LastIndex(text, "|"); idx >= 0 {
		text = text[idx+1:]
	}
	return strings.TrimSpace(text)
}

func (h *HealthCanada) parseDescription(block *goquery.Selection) string {
	descSel := block.Find(hcDescriptionSelector).First()
	if descSel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(descSel.Text())
}

func (h *HealthCanada) absoluteURL(href string) string {
	if href == "" {
		return h.origin
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return h.origin + href
}

// healthCanadaSeverity infers severity from hazard-type labels in the
// title. This is a best-effort heuristic with no upstream stability
// guarantee. "Type III" is matched first so the shorter labels do not
// shadow it.
func healthCanadaSeverity(title string) model.Severity {
	switch {
	case strings.Contains(title, "Type III"):
		return model.SeverityLow
	case strings.Contains(title, "Type II"):
		return model.SeverityMedium
	case strings.Contains(title, "Type I"):
		return model.SeverityHigh
	default:
		return model.SeverityLow
	}
}
