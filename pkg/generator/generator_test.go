package generator_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-scorepipe/pkg/generator"
	"github.com/askiada/go-scorepipe/pkg/record"
)

func defaultConfig() generator.Config {
	return generator.Config{
		Mean:        70,
		StdDev:      30,
		Min:         0,
		Max:         100,
		FailureOdds: 20,
	}
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	_, err := generator.New(defaultConfig(), nil)
	require.ErrorIs(t, err, generator.ErrRandMustBeSet)

	tcs := map[string]func(c *generator.Config){
		"zero std dev":   func(c *generator.Config) { c.StdDev = 0 },
		"min above max":  func(c *generator.Config) { c.Min = 200 },
		"no failure odd": func(c *generator.Config) { c.FailureOdds = 0 },
		"nan mean":       func(c *generator.Config) { c.Mean = math.NaN() },
		"nan std dev":    func(c *generator.Config) { c.StdDev = math.NaN() },
		"nan min":        func(c *generator.Config) { c.Min = math.NaN() },
		"nan max":        func(c *generator.Config) { c.Max = math.NaN() },
		"inf mean":       func(c *generator.Config) { c.Mean = math.Inf(1) },
		"inf std dev":    func(c *generator.Config) { c.StdDev = math.Inf(1) },
		"inf max":        func(c *generator.Config) { c.Max = math.Inf(1) },
		"neg inf min":    func(c *generator.Config) { c.Min = math.Inf(-1) },
	}
	for name, mutate := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			mutate(&cfg)
			_, err := generator.New(cfg, generator.NewRand(1))
			require.ErrorIs(t, err, generator.ErrInvalidConfig)
		})
	}
}

func TestFillRangeAndIDs(t *testing.T) {
	t.Parallel()

	attempts := 0
	gen, err := generator.New(defaultConfig(), generator.NewRand(42), generator.OnAttempt(func(int, int, record.Record, error) {
		attempts++
	}))
	require.NoError(t, err)

	records, err := gen.Fill(context.Background(), 200)
	require.NoError(t, err)
	require.Equal(t, 200, records.Len())

	for i, r := range records.Records() {
		assert.Equal(t, i+1, r.ID)
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 100.0)
	}
	// a normal distribution with this spread rejects a sizeable share of draws
	assert.Greater(t, attempts, 200)
}

func TestFillIsReproducible(t *testing.T) {
	t.Parallel()

	fill := func() []record.Record {
		gen, err := generator.New(defaultConfig(), generator.NewRand(7))
		require.NoError(t, err)
		records, err := gen.Fill(context.Background(), 30)
		require.NoError(t, err)

		return records.Records()
	}

	assert.Equal(t, fill(), fill())
}

func TestGenerateSimulatedFailure(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.FailureOdds = 1
	gen, err := generator.New(cfg, generator.NewRand(3))
	require.NoError(t, err)

	_, err = gen.Generate(1)
	require.ErrorIs(t, err, generator.ErrSimulatedFailure)
	assert.True(t, generator.IsRetryable(err))
}

func TestGenerateOutOfRange(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Min = 1000
	cfg.Max = 2000
	cfg.FailureOdds = 1 << 30
	gen, err := generator.New(cfg, generator.NewRand(3))
	require.NoError(t, err)

	_, err = gen.Generate(1)
	require.ErrorIs(t, err, generator.ErrOutOfRange)

	var rangeErr *generator.OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Less(t, rangeErr.Score, 1000.0)
	assert.Contains(t, err.Error(), "out of range [1000.0, 2000.0]")
}

func TestFillMaxAttempts(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.FailureOdds = 1

	var seen []int
	gen, err := generator.New(cfg, generator.NewRand(5),
		generator.MaxAttempts(3),
		generator.RetryPause(time.Microsecond),
		generator.OnAttempt(func(id, attempt int, _ record.Record, err error) {
			assert.Equal(t, 1, id)
			assert.Error(t, err)
			seen = append(seen, attempt)
		}),
	)
	require.NoError(t, err)

	_, err = gen.Fill(context.Background(), 2)
	require.ErrorIs(t, err, generator.ErrMaxAttemptsExceeded)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestFillCancelled(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.FailureOdds = 1
	gen, err := generator.New(cfg, generator.NewRand(5), generator.RetryPause(time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err = gen.Fill(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFillZero(t *testing.T) {
	t.Parallel()

	gen, err := generator.New(defaultConfig(), generator.NewRand(1))
	require.NoError(t, err)

	records, err := gen.Fill(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, records.Len())
}

func TestFillNegativeCount(t *testing.T) {
	t.Parallel()

	gen, err := generator.New(defaultConfig(), generator.NewRand(1))
	require.NoError(t, err)

	records, err := gen.Fill(context.Background(), -1)
	require.ErrorIs(t, err, generator.ErrInvalidConfig)
	assert.Nil(t, records)
}

func TestGenerateRejectsOverflowedScore(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Mean = math.MaxFloat64
	cfg.StdDev = math.MaxFloat64
	cfg.Min = -math.MaxFloat64
	cfg.Max = math.MaxFloat64
	cfg.FailureOdds = 1 << 30
	gen, err := generator.New(cfg, generator.NewRand(3))
	require.NoError(t, err)

	for range 50 {
		rec, err := gen.Generate(1)
		if err != nil {
			require.ErrorIs(t, err, generator.ErrOutOfRange)

			continue
		}
		assert.False(t, math.IsNaN(rec.Score))
		assert.False(t, math.IsInf(rec.Score, 0))
	}
}
