package pipeline_test

import (
	"iter"
	"slices"
	"testing"
	"time"

	"github.com/askiada/go-scorepipe/pkg/pipeline/model"
	"github.com/askiada/go-scorepipe/pkg/record"
)

type printCall struct {
	title   string
	records []record.Record
	summary bool
}

type capturePrinter struct {
	calls []printCall
}

func (p *capturePrinter) Print(title string, records iter.Seq[record.Record], summary bool) int {
	recs := slices.Collect(records)
	p.calls = append(p.calls, printCall{title: title, records: recs, summary: summary})

	return len(recs)
}

// recordingOption logs every hook call as "<hook>:<step>".
type recordingOption struct {
	t      *testing.T
	events []string
	failOn string
}

func newRecordingOption(t *testing.T) *recordingOption {
	t.Helper()

	return &recordingOption{t: t}
}

func (o *recordingOption) hook(name string) error {
	o.events = append(o.events, name)
	if name == o.failOn {
		return errHook
	}

	return nil
}

func (o *recordingOption) New() error { return o.hook("new") }

func (o *recordingOption) PrepareStep(parent, step *model.StepInfo) error {
	return o.hook("prepare:" + parent.Name + ">" + step.Name)
}

func (o *recordingOption) OnStepDone(step *model.StepInfo, _ int, _ time.Duration) error {
	return o.hook("done:" + step.Name)
}

func (o *recordingOption) OnStepSkipped(step *model.StepInfo) error {
	return o.hook("skipped:" + step.Name)
}

func (o *recordingOption) Finish() error { return o.hook("finish") }

func scenario() *record.Collection {
	return record.NewCollection(
		record.Record{ID: 1, Score: 90},
		record.Record{ID: 2, Score: 50},
		record.Record{ID: 3, Score: 70},
	)
}
