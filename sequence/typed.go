package sequence

import "iter"

// Nullable holds a value that may be absent. It is used to push rows to
// typed tables.
type Nullable[T any] struct {
	v     T
	valid bool
}

// Of returns a Nullable holding v.
func Of[T any](v T) Nullable[T] {
	return Nullable[T]{v: v, valid: true}
}

// None returns an absent Nullable.
func None[T any]() Nullable[T] {
	return Nullable[T]{}
}

// Get returns the value and whether it is present.
func (n Nullable[T]) Get() (T, bool) {
	return n.v, n.valid
}

func pushNullable[T any](s *Sequence[T], v Nullable[T]) {
	if v.valid {
		s.Push(v.v)
	} else {
		s.PushAbsent()
	}
}

// Table2 is a two-column table with typed columns.
type Table2[A, B any] struct {
	a *Sequence[A]
	b *Sequence[B]
	t *Table
}

// Row2 holds the values of a Table2 row, nil when absent.
type Row2[A, B any] struct {
	First  *A
	Second *B
}

// NewTable2 creates an empty two-column table backed by slices.
func NewTable2[A, B any]() *Table2[A, B] {
	a, b := NewSequence[A](), NewSequence[B]()
	return &Table2[A, B]{a: a, b: b, t: &Table{cols: []Column{a, b}}}
}

// NewTable2From creates a two-column table from sequences of the same
// length. The values are moved into the table and a and b are left empty.
func NewTable2From[A, B any](a *Sequence[A], b *Sequence[B]) (*Table2[A, B], error) {
	t, err := NewTable(a, b)
	if err != nil {
		return nil, err
	}
	return &Table2[A, B]{
		a: t.cols[0].(*Sequence[A]),
		b: t.cols[1].(*Sequence[B]),
		t: t,
	}, nil
}

// Push appends a row to the table.
func (t *Table2[A, B]) Push(a Nullable[A], b Nullable[B]) {
	pushNullable(t.a, a)
	pushNullable(t.b, b)
}

// Len returns the number of rows in the table.
func (t *Table2[A, B]) Len() int {
	return t.a.Len()
}

// Table returns the untyped view of the table.
func (t *Table2[A, B]) Table() *Table {
	return t.t
}

// Begin returns an iterator on the first row of the table.
func (t *Table2[A, B]) Begin() Table2Iterator[A, B] {
	return Table2Iterator[A, B]{t: t, p: [2]position{t.a.begin(), t.b.begin()}}
}

// End returns the past-the-end iterator of the table.
func (t *Table2[A, B]) End() Table2Iterator[A, B] {
	return Table2Iterator[A, B]{t: t, p: [2]position{t.a.end(), t.b.end()}}
}

// Erase removes the row it points to and returns an iterator on the row
// that now occupies it. It panics like Table.Erase.
func (t *Table2[A, B]) Erase(it Table2Iterator[A, B]) Table2Iterator[A, B] {
	if it.t != t {
		panic("sequence: iterator belongs to another table")
	}
	next := t.t.Erase(TableIterator{t: t.t, p: it.p[:]})
	return Table2Iterator[A, B]{t: t, p: [2]position(next.p)}
}

// Rows returns an iterator over the rows of the table.
func (t *Table2[A, B]) Rows() iter.Seq2[int, Row2[A, B]] {
	return func(yield func(int, Row2[A, B]) bool) {
		i := 0
		for it := t.Begin(); !it.Done(); it.Next() {
			if !yield(i, it.Row()) {
				return
			}
			i++
		}
	}
}

// Table2Iterator walks the rows of a Table2. Iterators are values: copies
// advance independently.
type Table2Iterator[A, B any] struct {
	t *Table2[A, B]
	p [2]position
}

// Next moves the iterator to the next row.
func (it *Table2Iterator[A, B]) Next() {
	it.p[0] = it.t.a.advance(it.p[0])
	it.p[1] = it.t.b.advance(it.p[1])
}

// Values returns the values of the current row, nil when absent.
func (it Table2Iterator[A, B]) Values() (*A, *B) {
	return it.t.a.valueAt(it.p[0]), it.t.b.valueAt(it.p[1])
}

// Row returns the values of the current row.
func (it Table2Iterator[A, B]) Row() Row2[A, B] {
	a, b := it.Values()
	return Row2[A, B]{First: a, Second: b}
}

// Equal reports whether it and other point to the same row.
func (it Table2Iterator[A, B]) Equal(other Table2Iterator[A, B]) bool {
	return it.t == other.t && it.p == other.p
}

// Done reports whether the iterator is exhausted.
func (it Table2Iterator[A, B]) Done() bool {
	return it.p[0] == it.t.a.end() && it.p[1] == it.t.b.end()
}

// Table3 is a three-column table with typed columns.
type Table3[A, B, C any] struct {
	a *Sequence[A]
	b *Sequence[B]
	c *Sequence[C]
	t *Table
}

// Row3 holds the values of a Table3 row, nil when absent.
type Row3[A, B, C any] struct {
	First  *A
	Second *B
	Third  *C
}

// NewTable3 creates an empty three-column table backed by slices.
func NewTable3[A, B, C any]() *Table3[A, B, C] {
	a, b, c := NewSequence[A](), NewSequence[B](), NewSequence[C]()
	return &Table3[A, B, C]{a: a, b: b, c: c, t: &Table{cols: []Column{a, b, c}}}
}

// NewTable3From creates a three-column table from sequences of the same
// length. The values are moved into the table and a, b and c are left empty.
func NewTable3From[A, B, C any](a *Sequence[A], b *Sequence[B], c *Sequence[C]) (*Table3[A, B, C], error) {
	t, err := NewTable(a, b, c)
	if err != nil {
		return nil, err
	}
	return &Table3[A, B, C]{
		a: t.cols[0].(*Sequence[A]),
		b: t.cols[1].(*Sequence[B]),
		c: t.cols[2].(*Sequence[C]),
		t: t,
	}, nil
}

// Push appends a row to the table.
func (t *Table3[A, B, C]) Push(a Nullable[A], b Nullable[B], c Nullable[C]) {
	pushNullable(t.a, a)
	pushNullable(t.b, b)
	pushNullable(t.c, c)
}

// Len returns the number of rows in the table.
func (t *Table3[A, B, C]) Len() int {
	return t.a.Len()
}

// Table returns the untyped view of the table.
func (t *Table3[A, B, C]) Table() *Table {
	return t.t
}

// Begin returns an iterator on the first row of the table.
func (t *Table3[A, B, C]) Begin() Table3Iterator[A, B, C] {
	return Table3Iterator[A, B, C]{t: t, p: [3]position{t.a.begin(), t.b.begin(), t.c.begin()}}
}

// End returns the past-the-end iterator of the table.
func (t *Table3[A, B, C]) End() Table3Iterator[A, B, C] {
	return Table3Iterator[A, B, C]{t: t, p: [3]position{t.a.end(), t.b.end(), t.c.end()}}
}

// Erase removes the row it points to and returns an iterator on the row
// that now occupies it. It panics like Table.Erase.
func (t *Table3[A, B, C]) Erase(it Table3Iterator[A, B, C]) Table3Iterator[A, B, C] {
	if it.t != t {
		panic("sequence: iterator belongs to another table")
	}
	next := t.t.Erase(TableIterator{t: t.t, p: it.p[:]})
	return Table3Iterator[A, B, C]{t: t, p: [3]position(next.p)}
}

// Rows returns an iterator over the rows of the table.
func (t *Table3[A, B, C]) Rows() iter.Seq2[int, Row3[A, B, C]] {
	return func(yield func(int, Row3[A, B, C]) bool) {
		i := 0
		for it := t.Begin(); !it.Done(); it.Next() {
			if !yield(i, it.Row()) {
				return
			}
			i++
		}
	}
}

// Table3Iterator walks the rows of a Table3. Iterators are values: copies
// advance independently.
type Table3Iterator[A, B, C any] struct {
	t *Table3[A, B, C]
	p [3]position
}

// Next moves the iterator to the next row.
func (it *Table3Iterator[A, B, C]) Next() {
	it.p[0] = it.t.a.advance(it.p[0])
	it.p[1] = it.t.b.advance(it.p[1])
	it.p[2] = it.t.c.advance(it.p[2])
}

// Values returns the values of the current row, nil when absent.
func (it Table3Iterator[A, B, C]) Values() (*A, *B, *C) {
	return it.t.a.valueAt(it.p[0]), it.t.b.valueAt(it.p[1]), it.t.c.valueAt(it.p[2])
}

// Row returns the values of the current row.
func (it Table3Iterator[A, B, C]) Row() Row3[A, B, C] {
	a, b, c := it.Values()
	return Row3[A, B, C]{First: a, Second: b, Third: c}
}

// Equal reports whether it and other point to the same row.
func (it Table3Iterator[A, B, C]) Equal(other Table3Iterator[A, B, C]) bool {
	return it.t == other.t && it.p == other.p
}

// Done reports whether the iterator is exhausted.
func (it Table3Iterator[A, B, C]) Done() bool {
	return it.p[0] == it.t.a.end() && it.p[1] == it.t.b.end() && it.p[2] == it.t.c.end()
}
