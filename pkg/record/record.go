package record

import (
	"iter"
	"slices"
)

// Record is a generated data item with an identifier and a score.
type Record struct {
	ID    int
	Score float64
}

// Predicate reports whether a record should be kept.
type Predicate func(Record) bool

// Collection is the ordered, mutable set of records owned by a run.
type Collection struct {
	records []Record
}

// NewCollection creates a collection holding a copy of records.
func NewCollection(records ...Record) *Collection {
	return &Collection{records: slices.Clone(records)}
}

// WithCapacity creates an empty collection able to hold n records without growing.
func WithCapacity(n int) *Collection {
	return &Collection{records: make([]Record, 0, n)}
}

func (c *Collection) Append(r Record) {
	c.records = append(c.records, r)
}

func (c *Collection) Len() int {
	if c == nil {
		return 0
	}

	return len(c.records)
}

// SortFunc reorders the records in place. The sort is stable.
func (c *Collection) SortFunc(cmp func(a, b Record) int) {
	slices.SortStableFunc(c.records, cmp)
}

// Records returns a copy of the stored records.
func (c *Collection) Records() []Record {
	if c == nil {
		return nil
	}

	return slices.Clone(c.records)
}

// View returns a read-only view over the current records.
func (c *Collection) View() View {
	if c == nil {
		return View{}
	}

	return View{records: c.records}
}

// View is a read-only window over a collection. It exposes no way to change the records.
type View struct {
	records []Record
}

func (v View) Len() int {
	return len(v.records)
}

func (v View) At(i int) Record {
	return v.records[i]
}

// All iterates every record in order.
func (v View) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range v.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Filter lazily yields the records matching keep.
func (v View) Filter(keep Predicate) iter.Seq[Record] {
	return Filter(v.All(), keep)
}

// Sum returns the total of every score.
func (v View) Sum() float64 {
	var sum float64
	for _, r := range v.records {
		sum += r.Score
	}

	return sum
}

// Mean returns the arithmetic mean of the scores. ok is false for an empty view.
func (v View) Mean() (mean float64, ok bool) {
	if len(v.records) == 0 {
		return 0, false
	}

	return v.Sum() / float64(len(v.records)), true
}

// Filter lazily yields the elements of seq matching keep.
func Filter(seq iter.Seq[Record], keep Predicate) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for r := range seq {
			if keep(r) && !yield(r) {
				return
			}
		}
	}
}

// Empty is a sequence with no records.
func Empty() iter.Seq[Record] {
	return func(func(Record) bool) {}
}

// ByScoreDesc orders records from the highest score to the lowest.
func ByScoreDesc(a, b Record) int {
	switch {
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	default:
		return 0
	}
}
