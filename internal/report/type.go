package report

import "pharmaclear-api/internal/alert"

type GenerateInput struct {
	Query  string
	Filter alert.FilterSpec
}

type GenerateOutput struct {
	ObjectName  string
	DownloadURL string
	AlertCount  int
}

type ChatInput struct {
	Question string
	Query    string
}

type ChatOutput struct {
	Answer string
}
