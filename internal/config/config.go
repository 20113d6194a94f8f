package config

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Generation controls how records are synthesized.
type Generation struct {
	Count        int     `toml:"count"`
	Seed         uint64  `toml:"seed"`
	Mean         float64 `toml:"mean"`
	StdDev       float64 `toml:"std_dev"`
	MinScore     float64 `toml:"min_score"`
	MaxScore     float64 `toml:"max_score"`
	FailureOdds  int     `toml:"failure_odds"`
	RetryPauseMS int     `toml:"retry_pause_ms"`
	// MaxAttempts caps draws per record; 0 retries forever.
	MaxAttempts int `toml:"max_attempts"`
}

// RetryPause returns the pause between failed attempts.
func (g Generation) RetryPause() time.Duration {
	return time.Duration(g.RetryPauseMS) * time.Millisecond
}

// Thresholds used by the analysis steps.
type Thresholds struct {
	Pass      float64 `toml:"pass"`
	Excellent float64 `toml:"excellent"`
}

type Logging struct {
	Level   string `toml:"level"`
	Format  string `toml:"format"`
	NoColor bool   `toml:"no_color"`
}

type Output struct {
	// DotFile receives a DOT diagram of the executed steps when set.
	DotFile string `toml:"dot_file"`
}

type Config struct {
	Generation Generation `toml:"generation"`
	Thresholds Thresholds `toml:"thresholds"`
	Logging    Logging    `toml:"logging"`
	Output     Output     `toml:"output"`
}

// Load reads path over the defaults and validates the result. An empty path only validates
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open config")
		}
		defer file.Close()

		err = toml.NewDecoder(file).DisallowUnknownFields().Decode(&cfg)
		if err != nil {
			return nil, errors.Wrap(err, "parse config")
		}
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
