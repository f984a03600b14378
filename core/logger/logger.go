package logger

// Logger is the logging surface the scheduler components write to:
// formatted messages for the info/warn/error levels and structured
// debug output for per-run diagnostics.
type Logger interface {
	// Debugw logs a message with structured fields.
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
