package http

import (
	"net/http"

	"pharmaclear-api/internal/alert"
	pkgErrors "pharmaclear-api/pkg/errors"
	"pharmaclear-api/pkg/response"
)

var (
	errQueryTooShort         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Query must be at least 2 characters")
	errInvalidDateFilter     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid date filter, must be one of: all, 1y, 3y, 5y")
	errInvalidSourceFilter   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid source filter, must be one of: all, FDA, Health Canada")
	errInvalidSeverityFilter = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid severity filter, must be one of: all, low, medium, high")
)

var eMap = response.ErrorMapping{
	alert.ErrQueryTooShort: errQueryTooShort,
}
