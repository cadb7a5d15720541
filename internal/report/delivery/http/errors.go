package http

import (
	"net/http"

	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/report"
	pkgErrors "pharmaclear-api/pkg/errors"
	"pharmaclear-api/pkg/response"
)

var (
	errInvalidBody      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errQueryTooShort    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Query must be at least 2 characters")
	errQuestionRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Question is required")
	errLLMUnavailable     = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Chat is not available")
	errStorageUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Report storage is not available")
)

var eMap = response.ErrorMapping{
	alert.ErrQueryTooShort:       errQueryTooShort,
	report.ErrQuestionRequired:   errQuestionRequired,
	report.ErrLLMUnavailable:     errLLMUnavailable,
	report.ErrStorageUnavailable: errStorageUnavailable,
}
