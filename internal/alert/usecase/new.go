package usecase

import (
	"time"

	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/alert/source"
	"pharmaclear-api/pkg/log"
)

type implUsecase struct {
	l            log.Logger
	sources      []source.Source
	fetchTimeout time.Duration
	clock        func() time.Time
}

// New creates the alert aggregation usecase over the given sources.
func New(l log.Logger, fetchTimeout time.Duration, sources ...source.Source) alert.UseCase {
	return &implUsecase{
		l:            l,
		sources:      sources,
		fetchTimeout: fetchTimeout,
		clock:        time.Now,
	}
}
