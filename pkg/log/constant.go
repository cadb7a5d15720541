package log

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelFatal = "fatal"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)
