package pipeline

import (
	"iter"

	"github.com/askiada/go-scorepipe/pkg/pipeline/model"
	"github.com/askiada/go-scorepipe/pkg/record"
)

// Step is a named unit of work over the shared collection.
type Step interface {
	Name() string
	Type() model.StepType
	Apply(records *record.Collection)
}

// Printer renders a sequence of records under a title.
type Printer interface {
	Print(title string, records iter.Seq[record.Record], summary bool) int
}

type filterPrintStep struct {
	name      string
	listTitle string
	keep      record.Predicate
	summary   bool
	printer   Printer
}

// FilterPrint prints the records matching keep. It never changes the collection.
func FilterPrint(name, listTitle string, keep record.Predicate, summary bool, printer Printer) Step {
	return &filterPrintStep{
		name:      name,
		listTitle: listTitle,
		keep:      keep,
		summary:   summary,
		printer:   printer,
	}
}

func (s *filterPrintStep) Name() string         { return s.name }
func (s *filterPrintStep) Type() model.StepType { return model.FilterStepType }

func (s *filterPrintStep) Apply(records *record.Collection) {
	view := records.View()
	s.printer.Print(s.listTitle, view.Filter(s.keep), s.summary)
}

type actionStep struct {
	name   string
	action func(records *record.Collection)
}

// Action runs fn with mutable access to the collection.
func Action(name string, fn func(records *record.Collection)) Step {
	return &actionStep{name: name, action: fn}
}

func (s *actionStep) Name() string         { return s.name }
func (s *actionStep) Type() model.StepType { return model.ActionStepType }

func (s *actionStep) Apply(records *record.Collection) {
	s.action(records)
}

type customLogicStep struct {
	name  string
	logic func(view record.View)
}

// CustomLogic runs fn against a read-only view of the collection.
func CustomLogic(name string, fn func(view record.View)) Step {
	return &customLogicStep{name: name, logic: fn}
}

func (s *customLogicStep) Name() string         { return s.name }
func (s *customLogicStep) Type() model.StepType { return model.CustomStepType }

func (s *customLogicStep) Apply(records *record.Collection) {
	s.logic(records.View())
}

var (
	_ Step = (*filterPrintStep)(nil)
	_ Step = (*actionStep)(nil)
	_ Step = (*customLogicStep)(nil)
)
