package usecase

import (
	"time"

	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/report"
	"pharmaclear-api/pkg/llm"
	"pharmaclear-api/pkg/log"
	"pharmaclear-api/pkg/minio"
)

const presignedURLTTL = 15 * time.Minute

type implUsecase struct {
	l       log.Logger
	alertUC alert.UseCase
	llm     llm.ILLM
	storage minio.MinIO
	bucket  string
	clock   func() time.Time
}

// New creates the report usecase. The LLM client may be nil; report
// generation then skips the summary and Chat returns ErrLLMUnavailable.
func New(l log.Logger, alertUC alert.UseCase, llmClient llm.ILLM, storage minio.MinIO, bucket string) report.UseCase {
	return &implUsecase{
		l:       l,
		alertUC: alertUC,
		llm:     llmClient,
		storage: storage,
		bucket:  bucket,
		clock:   time.Now,
	}
}
