package http

import (
	"strings"
	"time"

	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/search"
	"pharmaclear-api/pkg/paginator"
)

type createReq struct {
	Query     string `json:"query"`
	Source    string `json:"source"`
	Severity  string `json:"severity"`
	DateRange string `json:"date_range"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return errEmptyQuery
	}
	return nil
}

func (r *createReq) applyDefaults() {
	if r.Source == "" {
		r.Source = "all"
	}
	if r.Severity == "" {
		r.Severity = "all"
	}
	if r.DateRange == "" {
		r.DateRange = "all"
	}
}

func (r createReq) toInput() search.CreateInput {
	return search.CreateInput{
		Query:     strings.TrimSpace(r.Query),
		Source:    r.Source,
		Severity:  r.Severity,
		DateRange: r.DateRange,
	}
}

type searchItem struct {
	ID        string `json:"id"`
	Query     string `json:"query"`
	Source    string `json:"source"`
	Severity  string `json:"severity"`
	DateRange string `json:"date_range"`
	CreatedAt string `json:"created_at"`
}

func newSearchItem(s model.SavedSearch) searchItem {
	return searchItem{
		ID:        s.ID,
		Query:     s.Query,
		Source:    s.Source,
		Severity:  s.Severity,
		DateRange: s.DateRange,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type listResp struct {
	Items []searchItem                `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func newListResp(out search.ListOutput) listResp {
	items := make([]searchItem, 0, len(out.Searches))
	for _, s := range out.Searches {
		items = append(items, newSearchItem(s))
	}
	return listResp{
		Items: items,
		Meta:  out.Paginator.ToResponse(),
	}
}
