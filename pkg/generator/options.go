package generator

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/askiada/go-scorepipe/pkg/record"
)

// AttemptFunc is called after every draw. err is nil when rec was accepted.
type AttemptFunc func(id, attempt int, rec record.Record, err error)

type Option func(g *Generator)

// RetryPause sets the wait between two attempts for the same identifier.
func RetryPause(d time.Duration) Option {
	return func(g *Generator) {
		g.retryPause = d
	}
}

// MaxAttempts caps the attempts per identifier. Zero means no cap.
func MaxAttempts(n int) Option {
	return func(g *Generator) {
		g.maxAttempts = n
	}
}

func OnAttempt(fn AttemptFunc) Option {
	return func(g *Generator) {
		g.onAttempt = fn
	}
}

func Logger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}
