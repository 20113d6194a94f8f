package model

type StepType string

const (
	StartStepType  StepType = "start"
	EndStepType    StepType = "end"
	FilterStepType StepType = "filter"
	ActionStepType StepType = "action"
	CustomStepType StepType = "custom"
)

// StepInfo describes a step to pipeline options.
type StepInfo struct {
	Type  StepType
	Name  string
	Index int
}

var (
	StartStep = &StepInfo{Type: StartStepType, Name: "start"}
	EndStep   = &StepInfo{Type: EndStepType, Name: "end"}
)
