package logging

// NewTestLogger returns a logger suitable for unit tests, console encoded
// at debug level.
func NewTestLogger() *Logger {
	return NewLoggerFromEnv("dev")
}
