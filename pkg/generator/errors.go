package generator

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrSimulatedFailure    = errors.New("simulated random error")
	ErrOutOfRange          = errors.New("score out of range")
	ErrMaxAttemptsExceeded = errors.New("max attempts exceeded")
	ErrRandMustBeSet       = errors.New("random source must be set")
	ErrInvalidConfig       = errors.New("invalid generator config")
)

// OutOfRangeError carries the rejected score. It matches ErrOutOfRange.
type OutOfRangeError struct {
	Score    float64
	Min, Max float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("raw score %.2f out of range [%.1f, %.1f]", e.Score, e.Min, e.Max)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// IsRetryable reports whether a failed draw can be retried with a fresh draw.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrSimulatedFailure) || errors.Is(err, ErrOutOfRange)
}
