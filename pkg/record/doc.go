// Package record provides the record type processed by the pipeline,
// the mutable collection that owns records for a run and a read-only view over it.
//
// Steps that must not change the stored records receive a View. Filtering a view is lazy:
// it returns an iter.Seq that walks the underlying records once, in order.
package record
