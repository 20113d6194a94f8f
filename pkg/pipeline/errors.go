package pipeline

import (
	"github.com/pkg/errors"
)

var (
	ErrPipelineMustBeSet   = errors.New("p must be set")
	ErrStepMustBeSet       = errors.New("step must be set")
	ErrCollectionMustBeSet = errors.New("collection must be set")
	ErrDuplicateStep       = errors.New("step name already used")
)
