package roster

import "github.com/han-tyumi/secret-santa/internal/logging"

// Option configures roster construction.
type Option func(*options)

type options struct {
	logger logging.Logger
	strict bool
}

// WithLogger sets the logger used to report ignored input.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStrict rejects exclusions that name members outside the roster
// instead of ignoring them.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}
