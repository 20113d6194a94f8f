package measure

import "time"

// Measure holds one metric per step name.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates what happened to one step.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AddRecords(total int)
	AddSkip()
	AVGDuration() time.Duration
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
	Runs() int64
	Skips() int64
	Records() int64
}
