package generator

import (
	"time"
)

// Options configures draw retries.
type Options struct {
	MaxAttempts int           // Upper bound on draws before giving up (0 = unlimited)
	Timeout     time.Duration // Timeout limits total generation time (0 = none)
	Seed        int64         // Seed for reproducible draws (0 = random)
	Workers     int           // Concurrent draw attempts; 1 keeps seeded output reproducible
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		MaxAttempts: DefaultMaxAttempts,
		Timeout:     10 * time.Second,
		Seed:        0,
		Workers:     1,
	}
}
