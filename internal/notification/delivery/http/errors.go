package http

import (
	"net/http"

	"pharmaclear-api/internal/notification"
	pkgErrors "pharmaclear-api/pkg/errors"
	"pharmaclear-api/pkg/response"
)

var (
	errInvalidQuery         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	errNotificationNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "Notification not found")
	errNotOwner             = pkgErrors.NewHTTPError(http.StatusForbidden, "Notification belongs to another user")
)

var eMap = response.ErrorMapping{
	notification.ErrNotificationNotFound: errNotificationNotFound,
	notification.ErrNotOwner:             errNotOwner,
}
