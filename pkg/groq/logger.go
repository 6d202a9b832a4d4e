// ABOUTME: Injectable leveled logging capability for the client
// ABOUTME: Defaults to a no-op so instrumentation never gates the stream

package groq

// Logger receives diagnostic output from the client. Implementations
// must be safe for use from concurrent calls.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}
