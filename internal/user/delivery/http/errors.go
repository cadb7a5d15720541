package http

import (
	"net/http"

	"pharmaclear-api/internal/user"
	pkgErrors "pharmaclear-api/pkg/errors"
	"pharmaclear-api/pkg/response"
)

var (
	errInvalidBody        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errInvalidEmail       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid email address")
	errWeakPassword       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Password must be at least 8 characters")
	errMissingCredentials = pkgErrors.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	errEmailExists        = pkgErrors.NewHTTPError(http.StatusConflict, "Email already registered")
	errInvalidCredentials = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	errUserNotFound       = pkgErrors.NewHTTPError(http.StatusNotFound, "User not found")
)

var eMap = response.ErrorMapping{
	user.ErrEmailExists:        errEmailExists,
	user.ErrInvalidCredentials: errInvalidCredentials,
	user.ErrUserNotFound:       errUserNotFound,
}
