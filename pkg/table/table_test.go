package table_test

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-scorepipe/pkg/record"
	"github.com/askiada/go-scorepipe/pkg/table"
)

func TestPrint(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	recs := []record.Record{{ID: 1, Score: 90}, {ID: 3, Score: 70.456}}

	n := table.NewPrinter(buf).Print("List: all", slices.Values(recs), true)

	assert.Equal(t, 2, n)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "--- List: all ---\n"))
	assert.Contains(t, out, "RECORD ID")
	assert.Contains(t, out, "90.00")
	assert.Contains(t, out, "70.46")
	assert.Contains(t, out, "Total matching records: 2")
	assert.NotContains(t, out, "No records met")
	assert.Less(t, strings.Index(out, "90.00"), strings.Index(out, "70.46"))
}

func TestPrintEmpty(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		summary bool
		want    []string
		notWant []string
	}{
		"with summary": {
			summary: true,
			want:    []string{"Total matching records: 0", "(No records met the criteria for this list)"},
		},
		"without summary": {
			summary: false,
			notWant: []string{"Total matching records", "No records met"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			n := table.NewPrinter(buf).Print("empty", record.Empty(), tc.summary)
			assert.Zero(t, n)
			for _, w := range tc.want {
				assert.Contains(t, buf.String(), w)
			}
			for _, w := range tc.notWant {
				assert.NotContains(t, buf.String(), w)
			}
		})
	}
}

func TestPrintConsumesLazySequenceOnce(t *testing.T) {
	t.Parallel()

	pulls := 0
	seq := func(yield func(record.Record) bool) {
		for i := 1; i <= 3; i++ {
			pulls++
			if !yield(record.Record{ID: i, Score: float64(i)}) {
				return
			}
		}
	}

	n := table.NewPrinter(&bytes.Buffer{}).Print("lazy", seq, false)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, pulls)
}
