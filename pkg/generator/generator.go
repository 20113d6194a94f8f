package generator

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/askiada/go-scorepipe/pkg/record"
)

// Config describes the score distribution and the failure injection.
type Config struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	// FailureOdds n makes one attempt in n fail with ErrSimulatedFailure.
	FailureOdds int
}

func (c Config) validate() error {
	for name, v := range map[string]float64{"mean": c.Mean, "std dev": c.StdDev, "min": c.Min, "max": c.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidConfig, "%s must be finite, got %v", name, v)
		}
	}
	if c.StdDev <= 0 {
		return errors.Wrap(ErrInvalidConfig, "std dev must be positive")
	}
	if c.Min > c.Max {
		return errors.Wrapf(ErrInvalidConfig, "min %.2f greater than max %.2f", c.Min, c.Max)
	}
	if c.FailureOdds < 1 {
		return errors.Wrap(ErrInvalidConfig, "failure odds must be at least 1")
	}

	return nil
}

type Generator struct {
	cfg         Config
	rnd         *rand.Rand
	retryPause  time.Duration
	maxAttempts int
	onAttempt   AttemptFunc
	logger      zerolog.Logger
}

// NewRand returns a PCG backed source. A zero seed is replaced by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New creates a generator drawing from rnd.
func New(cfg Config, rnd *rand.Rand, opts ...Option) (*Generator, error) {
	if rnd == nil {
		return nil, ErrRandMustBeSet
	}
	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:    cfg,
		rnd:    rnd,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Generate performs a single draw for id.
func (g *Generator) Generate(id int) (record.Record, error) {
	score := g.rnd.NormFloat64()*g.cfg.StdDev + g.cfg.Mean
	injected := g.rnd.IntN(g.cfg.FailureOdds) == 0

	if injected {
		return record.Record{}, ErrSimulatedFailure
	}
	// Written so that NaN fails the check.
	if !(score >= g.cfg.Min && score <= g.cfg.Max) {
		return record.Record{}, &OutOfRangeError{Score: score, Min: g.cfg.Min, Max: g.cfg.Max}
	}

	return record.Record{ID: id, Score: score}, nil
}

// Fill generates n records with identifiers 1..n, retrying each identifier until a draw succeeds.
func (g *Generator) Fill(ctx context.Context, n int) (*record.Collection, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "record count %d is negative", n)
	}
	records := record.WithCapacity(n)

	for id := 1; id <= n; id++ {
		rec, err := g.generateWithRetry(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "id %d", id)
		}
		records.Append(rec)
	}

	return records, nil
}

func (g *Generator) generateWithRetry(ctx context.Context, id int) (record.Record, error) {
	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return record.Record{}, ctx.Err()
		default:
		}

		rec, err := g.Generate(id)
		if g.onAttempt != nil {
			g.onAttempt(id, attempt, rec, err)
		}
		if err == nil {
			return rec, nil
		}
		if !IsRetryable(err) {
			return record.Record{}, err
		}

		g.logger.Debug().Int("id", id).Int("attempt", attempt).Err(err).Msg("generation attempt failed")

		if g.maxAttempts > 0 && attempt >= g.maxAttempts {
			return record.Record{}, errors.Wrapf(ErrMaxAttemptsExceeded, "after %d attempts, last error: %v", attempt, err)
		}

		err = g.pause(ctx)
		if err != nil {
			return record.Record{}, err
		}
	}
}

func (g *Generator) pause(ctx context.Context) error {
	if g.retryPause <= 0 {
		return nil
	}

	timer := time.NewTimer(g.retryPause)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
