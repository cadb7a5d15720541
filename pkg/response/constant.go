package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
	ValidationErrorMsg  = "Validation failed"

	ValidationErrorCode     = 400
	InternalServerErrorCode = 500

	// DefaultStackTraceDepth bounds captured frames for internal error reports.
	DefaultStackTraceDepth = 16

	// DiscordMaxMessageLen is Discord's content length limit per message.
	DiscordMaxMessageLen = 1900
)
