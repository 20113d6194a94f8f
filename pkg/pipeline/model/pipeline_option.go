package model

import "time"

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error
	// PrepareStep runs when a step is added, after its parent step.
	PrepareStep(parentStep, step *StepInfo) error
	// OnStepDone runs after the body of a step returned.
	OnStepDone(step *StepInfo, records int, elapsed time.Duration) error
	// OnStepSkipped runs when a step body is skipped because there is no data.
	OnStepSkipped(step *StepInfo) error
	// Finish runs after the pipeline is finished.
	Finish() error
}
