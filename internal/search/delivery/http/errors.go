package http

import (
	"net/http"

	"pharmaclear-api/internal/search"
	pkgErrors "pharmaclear-api/pkg/errors"
	"pharmaclear-api/pkg/response"
)

var (
	errInvalidBody    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errEmptyQuery     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Query is required")
	errSearchNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "Saved search not found")
	errNotOwner       = pkgErrors.NewHTTPError(http.StatusForbidden, "Saved search belongs to another user")
)

var eMap = response.ErrorMapping{
	search.ErrSearchNotFound: errSearchNotFound,
	search.ErrNotOwner:       errNotOwner,
}
