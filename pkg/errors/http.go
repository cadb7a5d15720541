package errors

import "net/http"

// NewHTTPError returns a new HTTPError with the given status code and message.
// If statusCode is 0, it defaults to http.StatusBadRequest.
func NewHTTPError(statusCode int, message string) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       statusCode,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewUnauthorizedHTTPError returns a 401 Unauthorized error.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusUnauthorized,
		Message:    MessageUnauthorized,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewForbiddenHTTPError returns a 403 Forbidden error.
func NewForbiddenHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusForbidden,
		Message:    MessageForbidden,
		StatusCode: http.StatusForbidden,
	}
}

// NewNotFoundHTTPError returns a 404 Not Found error.
func NewNotFoundHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusNotFound,
		Message:    MessageNotFound,
		StatusCode: http.StatusNotFound,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}
