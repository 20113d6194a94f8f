// Package table renders records as bordered text tables.
package table

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	pretty "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/askiada/go-scorepipe/pkg/record"
)

const (
	idWidth    = 10
	scoreWidth = 12
)

// Printer writes record tables to an io.Writer.
type Printer struct {
	w     io.Writer
	style pretty.Style
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, style: pretty.StyleDefault}
}

// Print renders title and every record of records, consuming the sequence once.
// With summary set it appends the row count and an explicit line when nothing matched.
// It returns the number of rows printed.
func (p *Printer) Print(title string, records iter.Seq[record.Record], summary bool) int {
	tw := pretty.NewWriter()
	tw.SetStyle(p.style)
	tw.AppendHeader(pretty.Row{"Record ID", "Score"})
	tw.SetColumnConfigs([]pretty.ColumnConfig{
		{Number: 1, WidthMin: idWidth, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, WidthMin: scoreWidth, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	count := 0
	for r := range records {
		tw.AppendRow(pretty.Row{strconv.Itoa(r.ID), strconv.FormatFloat(r.Score, 'f', 2, 64)})
		count++
	}

	fmt.Fprintf(p.w, "--- %s ---\n", title)
	fmt.Fprintln(p.w, tw.Render())
	if summary {
		fmt.Fprintf(p.w, "Total matching records: %d\n", count)
		if count == 0 {
			fmt.Fprintln(p.w, "(No records met the criteria for this list)")
		}
	}
	fmt.Fprintln(p.w)

	return count
}
