package grading_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/askiada/go-scorepipe/pkg/record"
)

type printed struct {
	title   string
	records []record.Record
	summary bool
}

type recordingPrinter struct {
	t     *testing.T
	calls []printed
}

func newRecordingPrinter(t *testing.T) *recordingPrinter {
	t.Helper()

	return &recordingPrinter{t: t}
}

func (p *recordingPrinter) Print(title string, records iter.Seq[record.Record], summary bool) int {
	p.t.Helper()

	recs := slices.Collect(records)
	p.calls = append(p.calls, printed{title: title, records: recs, summary: summary})

	return len(recs)
}

func scenario() *record.Collection {
	return record.NewCollection(
		record.Record{ID: 1, Score: 90},
		record.Record{ID: 2, Score: 50},
		record.Record{ID: 3, Score: 70},
	)
}
