package report

import (
	"context"

	"pharmaclear-api/internal/model"
)

type UseCase interface {
	// Generate runs a search, renders the results as a PDF with a model
	// written summary, stores it, and returns a presigned download URL.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)

	// Chat answers a question about the alerts matching a query.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}
