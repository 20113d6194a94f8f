package measure

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-scorepipe/pkg/pipeline/model"
)

var (
	ErrUnknownStep   = errors.New("unknown step")
	ErrDuplicateStep = errors.New("step already measured")
)

type pipelineMeasure struct {
	Measure
	startTime time.Time
}

func (pm *pipelineMeasure) New() error {
	pm.startTime = time.Now()
	pm.AddMetric(model.StartStep.Name)
	pm.AddMetric(model.EndStep.Name)

	return nil
}

func (pm *pipelineMeasure) PrepareStep(_, step *model.StepInfo) error {
	if pm.GetMetric(step.Name) != nil {
		return errors.Wrap(ErrDuplicateStep, step.Name)
	}
	pm.AddMetric(step.Name)

	return nil
}

func (pm *pipelineMeasure) OnStepDone(step *model.StepInfo, records int, elapsed time.Duration) error {
	mt := pm.GetMetric(step.Name)
	if mt == nil {
		return errors.Wrap(ErrUnknownStep, step.Name)
	}
	mt.AddDuration(elapsed)
	mt.AddRecords(records)
	mt.SetTotalDuration(time.Since(pm.startTime))

	return nil
}

func (pm *pipelineMeasure) OnStepSkipped(step *model.StepInfo) error {
	mt := pm.GetMetric(step.Name)
	if mt == nil {
		return errors.Wrap(ErrUnknownStep, step.Name)
	}
	mt.AddSkip()

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	pm.GetMetric(model.EndStep.Name).SetTotalDuration(time.Since(pm.startTime))

	return nil
}

// PipelineMeasure records step durations into measure.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{Measure: measure}
}
