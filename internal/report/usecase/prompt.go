package usecase

import (
	"fmt"
	"strings"

	"pharmaclear-api/internal/model"
)

const (
	summarySystemPrompt = "You are a pharmaceutical compliance analyst. Summarize regulatory alerts factually and concisely for a compliance report. Do not speculate beyond the provided data."

	chatSystemPrompt = "You are a pharmaceutical compliance assistant. Answer questions using only the provided regulatory alerts. If the alerts do not contain the answer, say so."

	// Prompts include at most this many alerts to keep them bounded.
	maxPromptAlerts = 20
)

func buildSummaryPrompt(query string, records []model.AlertRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a short summary (3-5 sentences) of the following regulatory alerts for the search %q. Highlight the highest-severity items.\n\n", query)
	writeAlertContext(&sb, records)
	return sb.String()
}

func buildChatPrompt(question string, records []model.AlertRecord) string {
	var sb strings.Builder
	if len(records) > 0 {
		sb.WriteString("Regulatory alerts:\n\n")
		writeAlertContext(&sb, records)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}

func writeAlertContext(sb *strings.Builder, records []model.AlertRecord) {
	n := len(records)
	if n > maxPromptAlerts {
		n = maxPromptAlerts
	}
	for i := 0; i < n; i++ {
		r := records[i]
		fmt.Fprintf(sb, "- [%s, %s, %s] %s: %s\n", r.Source, r.Severity, r.Date, r.Title, r.Description)
	}
	if len(records) > n {
		fmt.Fprintf(sb, "(%d more alerts omitted)\n", len(records)-n)
	}
}
