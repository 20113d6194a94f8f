package drawer

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-scorepipe/pkg/pipeline/measure"
	"github.com/askiada/go-scorepipe/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m         measure.Measure
	startTime time.Time
	parents   map[string]string
	last      string
}

func (pd *pipelineDrawer) New() error {
	pd.startTime = time.Now()
	pd.parents = make(map[string]string)
	pd.last = model.StartStep.Name

	err := pd.AddStep(model.StartStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = pd.AddStep(model.EndStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareStep(parentStep, step *model.StepInfo) error {
	err := pd.AddStep(step.Name)
	if err != nil {
		return err
	}
	err = pd.AddLink(parentStep.Name, step.Name)
	if err != nil {
		return err
	}
	pd.parents[step.Name] = parentStep.Name
	pd.last = step.Name

	return nil
}

func (pd *pipelineDrawer) OnStepDone(step *model.StepInfo, records int, _ time.Duration) error {
	parent, ok := pd.parents[step.Name]
	if !ok {
		return nil
	}

	return pd.LabelLink(parent, step.Name, strconv.Itoa(records)+" records")
}

func (pd *pipelineDrawer) OnStepSkipped(step *model.StepInfo) error {
	return pd.MarkSkipped(step.Name)
}

func (pd *pipelineDrawer) Finish() error {
	err := pd.AddLink(pd.last, model.EndStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to link end step")
	}

	if pd.m != nil {
		err := pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}
	err = pd.SetTotalTime(model.EndStep.Name, pd.startTime)
	if err != nil {
		return errors.Wrap(err, "unable to set total time")
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer draws the executed steps with drawer. measure may be nil.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{Drawer: drawer, m: measure}
}
