// Package logging builds the zerolog logger used across a run.
package logging

import (
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config contains logging configuration.
type Config struct {
	Level   string
	Format  string
	NoColor bool
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatConsole
	}
}

// Validate validates logging configuration.
func (c Config) Validate() error {
	c.ApplyDefaults()

	validLevels := []string{"trace", "debug", "info", "warn", "error", "disabled"}
	if !slices.Contains(validLevels, strings.ToLower(c.Level)) {
		return errors.Errorf("logging.level must be one of %v (got: %s)", validLevels, c.Level)
	}
	validFormats := []string{FormatConsole, FormatJSON}
	if !slices.Contains(validFormats, strings.ToLower(c.Format)) {
		return errors.Errorf("logging.format must be one of %v (got: %s)", validFormats, c.Format)
	}

	return nil
}

// New creates a logger writing to w.
func New(cfg Config, w io.Writer) (zerolog.Logger, error) {
	cfg.ApplyDefaults()
	err := cfg.Validate()
	if err != nil {
		return zerolog.Nop(), err
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "parse log level")
	}

	output := w
	if strings.ToLower(cfg.Format) == FormatConsole {
		output = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    cfg.NoColor || !isTerminal(w),
			TimeFormat: time.TimeOnly,
		}
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
