// Package grading defines the analysis steps run over the generated records.
package grading

import (
	"fmt"
	"io"

	"github.com/askiada/go-scorepipe/pkg/pipeline"
	"github.com/askiada/go-scorepipe/pkg/record"
)

// Thresholds separate failing, passing and excellent scores.
type Thresholds struct {
	Pass      float64
	Excellent float64
}

// IsExcellent keeps scores strictly above the excellent threshold.
func (t Thresholds) IsExcellent(r record.Record) bool {
	return r.Score > t.Excellent
}

// IsFailing keeps scores strictly below the pass threshold.
func (t Thresholds) IsFailing(r record.Record) bool {
	return r.Score < t.Pass
}

// Steps returns the analysis in execution order. Banners and statistics go to out,
// tables go through printer.
func Steps(t Thresholds, printer pipeline.Printer, out io.Writer) []pipeline.Step {
	return []pipeline.Step{
		pipeline.FilterPrint(
			"(1) Filter: Excellent Records",
			fmt.Sprintf("List: Score > %.1f", t.Excellent),
			t.IsExcellent,
			true,
			printer,
		),
		pipeline.FilterPrint(
			"(2) Filter: Failing Records",
			fmt.Sprintf("List: Score < %.1f", t.Pass),
			t.IsFailing,
			true,
			printer,
		),
		pipeline.CustomLogic(
			"(3) Calculate & Filter: Above Average",
			AboveAverage(printer, out),
		),
		pipeline.Action(
			"(4) Action & View: Sort All and Print",
			SortAndPrint(printer, out),
		),
	}
}

// AboveAverage prints the mean score and every record scoring at least the mean.
func AboveAverage(printer pipeline.Printer, out io.Writer) func(view record.View) {
	return func(view record.View) {
		mean, ok := view.Mean()
		if !ok {
			printStats(out, "0", "N/A")
			printer.Print("List: Scoring >= Average (N/A)", record.Empty(), true)

			return
		}

		printStats(out, fmt.Sprint(view.Len()), fmt.Sprintf("%.2f", mean))
		printer.Print(
			fmt.Sprintf("List: Scoring >= Average (%.2f)", mean),
			view.Filter(func(r record.Record) bool { return r.Score >= mean }),
			true,
		)
	}
}

func printStats(out io.Writer, analyzed, average string) {
	fmt.Fprintln(out, "--- Statistics ---")
	fmt.Fprintf(out, "Number of records analyzed: %s\n", analyzed)
	fmt.Fprintf(out, "Calculated Average Score: %s\n", average)
	fmt.Fprintln(out, "--------------------")
}

// SortAndPrint sorts the collection by descending score and prints it whole.
func SortAndPrint(printer pipeline.Printer, out io.Writer) func(records *record.Collection) {
	return func(records *record.Collection) {
		fmt.Fprintln(out, "--- Sorting Data by Score (Descending)... ---")
		records.SortFunc(record.ByScoreDesc)
		fmt.Fprintln(out, "--- Data Sorted Successfully ---")
		fmt.Fprintln(out)

		printer.Print("List: All Records (Sorted by Score Descending)", records.View().All(), false)
	}
}
