package config

import (
	"math"

	"github.com/pkg/errors"

	"github.com/askiada/go-scorepipe/internal/logging"
)

var ErrInvalid = errors.New("invalid config")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFinite(); err != nil {
		return err
	}
	if err := c.validateGeneration(); err != nil {
		return err
	}
	if err := c.validateThresholds(); err != nil {
		return err
	}

	err := c.LoggerConfig().Validate()
	if err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}

	return nil
}

func (c *Config) validateFinite() error {
	fields := []struct {
		key   string
		value float64
	}{
		{"generation.mean", c.Generation.Mean},
		{"generation.std_dev", c.Generation.StdDev},
		{"generation.min_score", c.Generation.MinScore},
		{"generation.max_score", c.Generation.MaxScore},
		{"thresholds.pass", c.Thresholds.Pass},
		{"thresholds.excellent", c.Thresholds.Excellent},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return errors.Wrapf(ErrInvalid, "%s must be a finite number, got %v", f.key, f.value)
		}
	}

	return nil
}

func (c *Config) validateGeneration() error {
	g := c.Generation
	switch {
	case g.Count < 0:
		return errors.Wrap(ErrInvalid, "generation.count must not be negative")
	case g.StdDev <= 0:
		return errors.Wrap(ErrInvalid, "generation.std_dev must be positive")
	case g.MinScore > g.MaxScore:
		return errors.Wrapf(ErrInvalid, "generation.min_score %.2f is greater than generation.max_score %.2f", g.MinScore, g.MaxScore)
	case g.FailureOdds < 1:
		return errors.Wrap(ErrInvalid, "generation.failure_odds must be at least 1")
	case g.RetryPauseMS < 0:
		return errors.Wrap(ErrInvalid, "generation.retry_pause_ms must not be negative")
	case g.MaxAttempts < 0:
		return errors.Wrap(ErrInvalid, "generation.max_attempts must not be negative")
	}

	return nil
}

func (c *Config) validateThresholds() error {
	if c.Thresholds.Pass > c.Thresholds.Excellent {
		return errors.Wrapf(ErrInvalid, "thresholds.pass %.1f is greater than thresholds.excellent %.1f", c.Thresholds.Pass, c.Thresholds.Excellent)
	}

	return nil
}

// LoggerConfig returns the logging section as a logging.Config.
func (c *Config) LoggerConfig() logging.Config {
	return logging.Config{
		Level:   c.Logging.Level,
		Format:  c.Logging.Format,
		NoColor: c.Logging.NoColor,
	}
}
