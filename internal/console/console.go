// Package console writes the human readable progress of a run.
package console

import (
	"fmt"
	"io"

	"github.com/askiada/go-scorepipe/pkg/record"
)

type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) GenerationStarted(total int) {
	fmt.Fprintf(r.w, "========== Generating Data for %d Records (Normal Dist., Retry on Error) ==========\n", total)
}

// Attempt reports one draw. It matches generator.AttemptFunc.
func (r *Reporter) Attempt(id, attempt int, rec record.Record, err error) {
	if attempt == 1 {
		fmt.Fprintf(r.w, "  Generating data for ID %-4d...", id)
	}
	if err != nil {
		fmt.Fprintf(r.w, "\n    [!!] Attempt %d Failed: %v. Retrying...", attempt, err)

		return
	}
	fmt.Fprintf(r.w, " [OK] Score: %.2f (Attempt %d)\n", rec.Score, attempt)
}

// GenerationFailed ends a progress line left open by a failed attempt.
func (r *Reporter) GenerationFailed(err error) {
	fmt.Fprintf(r.w, "\n    [xx] Generation stopped: %v\n", err)
}

func (r *Reporter) GenerationDone(total int) {
	fmt.Fprintf(r.w, "======= Generation Complete: %d Records Generated =======\n", total)
}

func (r *Reporter) ProcessingStarted() {
	fmt.Fprintln(r.w, "\n========== Processing Record Data ==========")
}

func (r *Reporter) ProcessingDone() {
	fmt.Fprintln(r.w, "\n========== Processing Complete ==========")
}
