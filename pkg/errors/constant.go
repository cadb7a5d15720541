package errors

const (
	MessageBadRequest   = "Bad Request"
	MessageUnauthorized = "Unauthorized"
	MessageForbidden    = "Forbidden"
	MessageNotFound     = "Not Found"
)
