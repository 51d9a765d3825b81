// Package logging provides the structured logger used across the draw pipeline.
package logging

// Logger defines methods for structured logging.
//
// All methods accept key-value pairs for structured fields, in the style of
// zap.SugaredLogger's "w" methods.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NewNop()
	}
	return l
}
