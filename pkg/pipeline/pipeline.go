package pipeline

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/askiada/go-scorepipe/pkg/pipeline/model"
	"github.com/askiada/go-scorepipe/pkg/record"
)

// Pipeline is an ordered list of steps.
type Pipeline struct {
	out    io.Writer
	logger zerolog.Logger
	opts   []model.PipelineOption
	steps  []Step
	infos  []*model.StepInfo
}

// New creates a new pipeline.
func New(options ...Option) (*Pipeline, error) {
	pipe := &Pipeline{
		out:    os.Stdout,
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(pipe)
	}

	for _, opt := range pipe.opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// AddStep appends step after the steps already added.
func AddStep(p *Pipeline, step Step) error {
	if p == nil {
		return ErrPipelineMustBeSet
	}
	if step == nil {
		return ErrStepMustBeSet
	}
	if !p.nameAvailable(step.Name()) {
		return errors.Wrapf(ErrDuplicateStep, "%q", step.Name())
	}

	parent := model.StartStep
	if len(p.infos) > 0 {
		parent = p.infos[len(p.infos)-1]
	}
	info := &model.StepInfo{
		Type:  step.Type(),
		Name:  step.Name(),
		Index: len(p.steps),
	}

	for _, opt := range p.opts {
		err := opt.PrepareStep(parent, info)
		if err != nil {
			return errors.Wrapf(err, "unable to prepare step %q", info.Name)
		}
	}

	p.steps = append(p.steps, step)
	p.infos = append(p.infos, info)

	return nil
}

// Step names key metrics and diagram vertices, so they must be unique and
// must not shadow the start and end markers.
func (p *Pipeline) nameAvailable(name string) bool {
	if name == model.StartStep.Name || name == model.EndStep.Name {
		return false
	}
	for _, info := range p.infos {
		if info.Name == name {
			return false
		}
	}

	return true
}

// AddSteps adds every step in order.
func AddSteps(p *Pipeline, steps ...Step) error {
	for _, step := range steps {
		err := AddStep(p, step)
		if err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of steps.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Run executes every step in order against records and waits for it to finish.
func (p *Pipeline) Run(records *record.Collection) error {
	if p == nil {
		return ErrPipelineMustBeSet
	}
	if records == nil {
		return ErrCollectionMustBeSet
	}

	for i, step := range p.steps {
		err := p.runStep(step, p.infos[i], records)
		if err != nil {
			return err
		}
	}

	return p.finishRun()
}

func (p *Pipeline) runStep(step Step, info *model.StepInfo, records *record.Collection) error {
	fmt.Fprintf(p.out, "\n========== %s ==========\n", info.Name)

	if records.Len() == 0 {
		fmt.Fprintln(p.out, "--- No data available to process for this step ---")
		fmt.Fprintln(p.out)
		p.logger.Debug().Str("step", info.Name).Msg("step skipped, no data")

		for _, opt := range p.opts {
			err := opt.OnStepSkipped(info)
			if err != nil {
				return errors.Wrapf(err, "step %q", info.Name)
			}
		}

		return nil
	}

	start := time.Now()
	step.Apply(records)
	elapsed := time.Since(start)

	p.logger.Debug().
		Str("step", info.Name).
		Str("type", string(info.Type)).
		Int("records", records.Len()).
		Dur("elapsed", elapsed).
		Msg("step done")

	for _, opt := range p.opts {
		err := opt.OnStepDone(info, records.Len(), elapsed)
		if err != nil {
			return errors.Wrapf(err, "step %q", info.Name)
		}
	}

	return nil
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
