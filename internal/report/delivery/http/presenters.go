package http

import (
	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/report"
)

type generateReq struct {
	Query          string `json:"query"`
	DateFilter     string `json:"date_filter"`
	SourceFilter   string `json:"source_filter"`
	SeverityFilter string `json:"severity_filter"`
}

func (r *generateReq) applyDefaults() {
	if r.DateFilter == "" {
		r.DateFilter = alert.FilterAll
	}
	if r.SourceFilter == "" {
		r.SourceFilter = alert.FilterAll
	}
	if r.SeverityFilter == "" {
		r.SeverityFilter = alert.FilterAll
	}
}

func (r generateReq) toInput() report.GenerateInput {
	return report.GenerateInput{
		Query: r.Query,
		Filter: alert.FilterSpec{
			DateRange: r.DateFilter,
			Source:    r.SourceFilter,
			Severity:  r.SeverityFilter,
		},
	}
}

type generateResp struct {
	ObjectName  string `json:"object_name"`
	DownloadURL string `json:"download_url"`
	AlertCount  int    `json:"alert_count"`
}

func newGenerateResp(out report.GenerateOutput) generateResp {
	return generateResp{
		ObjectName:  out.ObjectName,
		DownloadURL: out.DownloadURL,
		AlertCount:  out.AlertCount,
	}
}

type chatReq struct {
	Question string `json:"question"`
	Query    string `json:"query"`
}

func (r chatReq) toInput() report.ChatInput {
	return report.ChatInput{
		Question: r.Question,
		Query:    r.Query,
	}
}

type chatResp struct {
	Answer string `json:"answer"`
}
