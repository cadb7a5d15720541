package http

import (
	"net/http"

	"pharmaclear-api/internal/watchlist"
	pkgErrors "pharmaclear-api/pkg/errors"
	"pharmaclear-api/pkg/response"
)

var (
	errInvalidBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errEmptyKeyword = pkgErrors.NewHTTPError(http.StatusBadRequest, "Keyword is required")
	errDuplicate    = pkgErrors.NewHTTPError(http.StatusConflict, "Keyword already on watchlist")
	errItemNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "Watchlist item not found")
	errNotOwner     = pkgErrors.NewHTTPError(http.StatusForbidden, "Watchlist item belongs to another user")
)

var eMap = response.ErrorMapping{
	watchlist.ErrEmptyKeyword: errEmptyKeyword,
	watchlist.ErrDuplicate:    errDuplicate,
	watchlist.ErrItemNotFound: errItemNotFound,
	watchlist.ErrNotOwner:     errNotOwner,
}
