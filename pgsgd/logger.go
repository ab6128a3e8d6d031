package pgsgd

import "log"

// Logger receives the engine's human-readable progress output. Format is
// human-readable only; there is no machine contract on it. Library code
// never reaches for a package-level logger directly: Run and
// RunDeterministic take one through Params, matching how this module's
// ambient logging is wired only at the CLI boundary.
type Logger interface {
	Printf(format string, args ...any)
}

// stdLogger adapts the standard library's log.Logger to the Logger
// interface; it is the zero-value behavior when no Logger is supplied,
// preserving "no machine contract" on the output.
type stdLogger struct{}

func (stdLogger) Printf(format string, args ...any) {
	log.Printf(format, args...)
}

// DefaultLogger returns the zero-value Logger, backed by log.Default().
func DefaultLogger() Logger {
	return stdLogger{}
}
