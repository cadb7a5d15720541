package http

import (
	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/model"
)

type searchReq struct {
	Q              string `form:"q"`
	DateFilter     string `form:"date_filter,default=all"`
	SourceFilter   string `form:"source_filter,default=all"`
	SeverityFilter string `form:"severity_filter,default=all"`
}

var (
	validDateFilters = map[string]struct{}{
		alert.FilterAll:           {},
		alert.DateRangeOneYear:    {},
		alert.DateRangeThreeYears: {},
		alert.DateRangeFiveYears:  {},
	}
	validSourceFilters = map[string]struct{}{
		alert.FilterAll:                  {},
		string(model.SourceFDA):          {},
		string(model.SourceHealthCanada): {},
	}
	validSeverityFilters = map[string]struct{}{
		alert.FilterAll:              {},
		string(model.SeverityLow):    {},
		string(model.SeverityMedium): {},
		string(model.SeverityHigh):   {},
	}
)

func (r searchReq) validate() error {
	if _, ok := validDateFilters[r.DateFilter]; !ok {
		return errInvalidDateFilter
	}
	if _, ok := validSourceFilters[r.SourceFilter]; !ok {
		return errInvalidSourceFilter
	}
	if _, ok := validSeverityFilters[r.SeverityFilter]; !ok {
		return errInvalidSeverityFilter
	}
	return nil
}

func (r searchReq) toInput() alert.SearchInput {
	return alert.SearchInput{
		Query: r.Q,
		Filter: alert.FilterSpec{
			DateRange: r.DateFilter,
			Source:    r.SourceFilter,
			Severity:  r.SeverityFilter,
		},
	}
}

type alertItem struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Source       string `json:"source"`
	Severity     string `json:"severity"`
	SourceURL    string `json:"source_url"`
	RecallNumber string `json:"recall_number"`
	EventID      string `json:"event_id"`
}

type searchResp struct {
	Results []alertItem `json:"results"`
	Total   int         `json:"total"`
}

func newSearchResp(out alert.SearchOutput) searchResp {
	items := make([]alertItem, 0, len(out.Results))
	for _, record := range out.Results {
		items = append(items, alertItem{
			Title:        record.Title,
			Description:  record.Description,
			Date:         record.Date,
			Source:       string(record.Source),
			Severity:     string(record.Severity),
			SourceURL:    record.SourceURL,
			RecallNumber: record.RecallNumber,
			EventID:      record.EventID,
		})
	}
	return searchResp{
		Results: items,
		Total:   out.Total,
	}
}
