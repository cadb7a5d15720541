package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/report"
	pkgMinIO "pharmaclear-api/pkg/minio"
	"pharmaclear-api/pkg/pdf"
	"pharmaclear-api/pkg/postgre"
)

func (uc *implUsecase) Generate(ctx context.Context, sc model.Scope, input report.GenerateInput) (report.GenerateOutput, error) {
	if uc.storage == nil {
		return report.GenerateOutput{}, report.ErrStorageUnavailable
	}

	searchOut, err := uc.alertUC.Search(ctx, sc, alert.SearchInput{
		Query:  input.Query,
		Filter: input.Filter,
	})
	if err != nil {
		return report.GenerateOutput{}, err
	}

	// Summary failures degrade to a report without one.
	summary := ""
	if uc.llm != nil && len(searchOut.Results) > 0 {
		summary, err = uc.llm.Complete(ctx, summarySystemPrompt, buildSummaryPrompt(input.Query, searchOut.Results))
		if err != nil {
			uc.l.Warnf(ctx, "internal.report.usecase.Generate: summary: %v", err)
			summary = ""
		}
	}

	rendered, err := pdf.RenderReport(pdf.ReportInput{
		Query:       input.Query,
		GeneratedAt: uc.clock(),
		Summary:     summary,
		Alerts:      toPDFAlerts(searchOut.Results),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Generate: %v", err)
		return report.GenerateOutput{}, err
	}

	objectName := fmt.Sprintf("reports/%s.pdf", postgre.NewUUID())
	if _, err := uc.storage.UploadObject(ctx, &pkgMinIO.UploadRequest{
		BucketName:  uc.bucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(rendered),
		Size:        int64(len(rendered)),
		ContentType: "application/pdf",
	}); err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Generate: %v", err)
		return report.GenerateOutput{}, err
	}

	downloadURL, err := uc.storage.GetPresignedDownloadURL(ctx, uc.bucket, objectName, presignedURLTTL)
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Generate: %v", err)
		return report.GenerateOutput{}, err
	}

	return report.GenerateOutput{
		ObjectName:  objectName,
		DownloadURL: downloadURL,
		AlertCount:  searchOut.Total,
	}, nil
}

func (uc *implUsecase) Chat(ctx context.Context, sc model.Scope, input report.ChatInput) (report.ChatOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return report.ChatOutput{}, report.ErrQuestionRequired
	}
	if uc.llm == nil {
		return report.ChatOutput{}, report.ErrLLMUnavailable
	}

	var contextAlerts []model.AlertRecord
	if strings.TrimSpace(input.Query) != "" {
		searchOut, err := uc.alertUC.Search(ctx, sc, alert.SearchInput{Query: input.Query})
		if err != nil {
			return report.ChatOutput{}, err
		}
		contextAlerts = searchOut.Results
	}

	answer, err := uc.llm.Complete(ctx, chatSystemPrompt, buildChatPrompt(input.Question, contextAlerts))
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Chat: %v", err)
		return report.ChatOutput{}, err
	}

	return report.ChatOutput{Answer: answer}, nil
}

func toPDFAlerts(records []model.AlertRecord) []pdf.Alert {
	alerts := make([]pdf.Alert, 0, len(records))
	for _, r := range records {
		alerts = append(alerts, pdf.Alert{
			Title:        r.Title,
			Description:  r.Description,
			Date:         r.Date,
			Source:       string(r.Source),
			Severity:     string(r.Severity),
			SourceURL:    r.SourceURL,
			RecallNumber: r.RecallNumber,
			EventID:      r.EventID,
		})
	}
	return alerts
}
