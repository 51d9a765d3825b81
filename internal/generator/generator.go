// Package generator retries draws until one succeeds.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/han-tyumi/secret-santa/internal/logging"
	"github.com/han-tyumi/secret-santa/internal/matcher"
)

const DefaultMaxAttempts = 1000

var (
	ErrAttemptsExhausted = errors.New("no valid assignment found")
	ErrTimeout           = errors.New("generation timeout exceeded")
)

// Drawer performs a single draw attempt.
type Drawer interface {
	Generate(rng *rand.Rand) (matcher.Assignment, error)
}

// Stats describes how a successful or failed generation went.
type Stats struct {
	Attempts int
	Elapsed  time.Duration
}

// Generator retries a Drawer until it produces an assignment.
//
// A Generator keeps its random source between calls, so calling Generate
// again yields a fresh draw. It is not safe for concurrent use.
type Generator struct {
	drawer  Drawer
	options *Options
	rng     *rand.Rand
	logger  logging.Logger
}

// New creates a generator drawing from d with the given options.
func New(d Drawer, options *Options, logger logging.Logger) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		drawer:  d,
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  logging.OrNop(logger),
	}
}

// Generate draws until an attempt succeeds, MaxAttempts is reached, the
// timeout expires or ctx is cancelled. Only ErrUnsatisfiable failures are
// retried; any other error is returned immediately.
func (g *Generator) Generate(ctx context.Context) (matcher.Assignment, Stats, error) {
	start := time.Now()

	if g.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.options.Timeout)
		defer cancel()
	}

	var (
		result   matcher.Assignment
		attempts int
		err      error
	)
	if g.options.Workers > 1 {
		result, attempts, err = g.generateParallel(ctx)
	} else {
		result, attempts, err = g.generateSequential(ctx, g.rng)
	}

	stats := Stats{Attempts: attempts, Elapsed: time.Since(start)}
	if err != nil {
		g.logger.Debug("generation failed", "attempts", stats.Attempts, "elapsed", stats.Elapsed, "error", err)
		return nil, stats, err
	}

	g.logger.Debug("generation succeeded", "attempts", stats.Attempts, "elapsed", stats.Elapsed)
	return result, stats, nil
}

func (g *Generator) generateSequential(ctx context.Context, rng *rand.Rand) (matcher.Assignment, int, error) {
	var (
		attempts int
		lastErr  error
	)
	for g.options.MaxAttempts <= 0 || attempts < g.options.MaxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, attempts, contextError(err, attempts)
		}

		attempts++
		result, err := g.drawer.Generate(rng)
		if err == nil {
			return result, attempts, nil
		}
		if !errors.Is(err, matcher.ErrUnsatisfiable) {
			return nil, attempts, err
		}

		g.logger.Debug("draw failed, retrying", "attempt", attempts, "error", err)
		lastErr = err
	}

	return nil, attempts, fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, attempts, lastErr)
}

// generateParallel runs independent draws on Workers goroutines, each with
// its own random source seeded from the generator's. The first success wins.
func (g *Generator) generateParallel(parent context.Context) (matcher.Assignment, int, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		attempts atomic.Int64
		once     sync.Once
		result   matcher.Assignment
		mu       sync.Mutex
		lastErr  error
	)

	eg, ctx := errgroup.WithContext(ctx)
	for range g.options.Workers {
		rng := rand.New(rand.NewSource(g.rng.Int63()))
		eg.Go(func() error {
			for ctx.Err() == nil {
				if n := attempts.Add(1); g.options.MaxAttempts > 0 && n > int64(g.options.MaxAttempts) {
					attempts.Add(-1)
					return nil
				}

				a, err := g.drawer.Generate(rng)
				if err == nil {
					once.Do(func() {
						result = a
						cancel()
					})
					return nil
				}
				if !errors.Is(err, matcher.ErrUnsatisfiable) {
					return err
				}

				mu.Lock()
				lastErr = err
				mu.Unlock()
			}
			return nil
		})
	}

	err := eg.Wait()
	total := int(attempts.Load())
	switch {
	case result != nil:
		return result, total, nil
	case err != nil:
		return nil, total, err
	case parent.Err() != nil:
		return nil, total, contextError(parent.Err(), total)
	case lastErr == nil:
		return nil, total, ErrAttemptsExhausted
	}
	return nil, total, fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, total, lastErr)
}

func contextError(err error, attempts int) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %d attempts", ErrTimeout, attempts)
	}
	return err
}
