package sequence

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// A Table represents a group of columns that share the same logical rows.
// Every push appends exactly one value or absence to each column and every
// erase removes the same row from each column, so all columns always have
// the same length.
type Table struct {
	cols []Column
}

// NewTable creates a table from cols, in order. The columns must have the
// same length. The table takes ownership of their content: values are moved
// into the table and every sequence passed in is left empty, so the table
// columns can only change through the table.
func NewTable(cols ...Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	n := cols[0].Len()
	for i, c := range cols[1:] {
		if c.Len() != n {
			return nil, fmt.Errorf("%w: column %d has length %d, want %d", ErrLengthMismatch, i+1, c.Len(), n)
		}
	}
	owned := make([]Column, len(cols))
	for i, c := range cols {
		owned[i] = c.detach()
	}
	return &Table{cols: owned}, nil
}

// Push appends a row to the table. values must hold exactly one entry per
// column, either a value of the column element type or Null (or nil) for an
// absent value. If an argument is invalid no column is modified.
func (t *Table) Push(values ...any) error {
	if len(values) != len(t.cols) {
		return fmt.Errorf("%w: got %d, want %d", ErrArity, len(values), len(t.cols))
	}
	for i, v := range values {
		if err := t.cols[i].check(v); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	for i, v := range values {
		t.cols[i].pushAny(v)
	}
	return nil
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return t.cols[0].Len()
}

// Columns returns the number of columns in the table.
func (t *Table) Columns() int {
	return len(t.cols)
}

// Column returns a read-only view of the column at index i.
func (t *Table) Column(i int) ColumnView {
	return columnView{c: t.cols[i]}
}

// Begin returns an iterator on the first row of the table.
func (t *Table) Begin() TableIterator {
	p := make([]position, len(t.cols))
	for i, c := range t.cols {
		p[i] = c.begin()
	}
	return TableIterator{t: t, p: p}
}

// End returns the past-the-end iterator of the table.
func (t *Table) End() TableIterator {
	p := make([]position, len(t.cols))
	for i, c := range t.cols {
		p[i] = c.end()
	}
	return TableIterator{t: t, p: p}
}

// Erase removes the row it points to from every column and returns an
// iterator on the row that now occupies it. Every other iterator of the
// table is invalidated. Erase panics if it is exhausted or belongs to
// another table, in which case no column is modified.
func (t *Table) Erase(it TableIterator) TableIterator {
	if it.t != t {
		panic("sequence: iterator belongs to another table")
	}
	for i, c := range t.cols {
		if it.p[i] == c.end() {
			panic("sequence: erase at end of table")
		}
	}
	p := make([]position, len(t.cols))
	for i, c := range t.cols {
		p[i] = c.erase(it.p[i])
	}
	return TableIterator{t: t, p: p}
}

// Rows returns an iterator over the rows of the table. Each row holds, per
// column, a *T pointing to the stored value or an untyped nil when absent.
func (t *Table) Rows() iter.Seq2[int, []any] {
	return func(yield func(int, []any) bool) {
		i := 0
		for it := t.Begin(); !it.Done(); it.Next() {
			if !yield(i, it.Row()) {
				return
			}
			i++
		}
	}
}

// Complete returns the rows holding a value in every column.
func (t *Table) Complete() *roaring.Bitmap {
	bms := make([]*roaring.Bitmap, len(t.cols))
	for i, c := range t.cols {
		bms[i] = c.Presence()
	}
	return roaring.FastAnd(bms...)
}

// Sparse returns the rows without a value in any column.
func (t *Table) Sparse() *roaring.Bitmap {
	bms := make([]*roaring.Bitmap, len(t.cols))
	for i, c := range t.cols {
		bms[i] = c.Absence()
	}
	return roaring.FastAnd(bms...)
}

// Stats returns the summary of every column, in order.
func (t *Table) Stats() []Stats {
	stats := make([]Stats, len(t.cols))
	for i, c := range t.cols {
		stats[i] = c.Stats()
	}
	return stats
}

// A TableIterator walks the rows of a Table forward, keeping one position
// per column. Iterators are values: copies advance independently.
type TableIterator struct {
	t *Table
	p []position
}

// Next moves every column of the iterator to the next row.
func (it *TableIterator) Next() {
	p := make([]position, len(it.p))
	for i, c := range it.t.cols {
		p[i] = c.advance(it.p[i])
	}
	it.p = p
}

// Row returns the values of the current row, a *T per present value and an
// untyped nil per absent value.
func (it TableIterator) Row() []any {
	row := make([]any, len(it.p))
	for i, c := range it.t.cols {
		row[i] = c.valueAny(it.p[i])
	}
	return row
}

// Equal reports whether it and other point to the same row of the same
// table, that is whether every pair of column positions is equal.
func (it TableIterator) Equal(other TableIterator) bool {
	if it.t != other.t || len(it.p) != len(other.p) {
		return false
	}
	for i := range it.p {
		if it.p[i] != other.p[i] {
			return false
		}
	}
	return true
}

// Done reports whether the iterator is exhausted.
func (it TableIterator) Done() bool {
	for i, c := range it.t.cols {
		if it.p[i] != c.end() {
			return false
		}
	}
	return true
}
