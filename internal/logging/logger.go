// Package logging defines a minimal structured-logging interface used across
// the project. Implementations can wrap slog, zap, zerolog, etc.
package logging

// Logger is a structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info("entry added", "id", id, "journal", journalID)
type Logger interface {
	// Debug logs fine-grained diagnostic detail.
	Debug(msg string, args ...any)

	// Info logs an informational message.
	Info(msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(msg string, args ...any)

	// Error logs an error message for failures.
	Error(msg string, args ...any)

	// With returns a child logger that always includes the given
	// key–value pairs.
	With(args ...any) Logger
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func (nopLogger) With(...any) Logger { return nopLogger{} }
