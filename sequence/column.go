package sequence

import (
	"fmt"
	"reflect"

	"github.com/RoaringBitmap/roaring/v2"
)

// Null marks an absent value when pushing to a Table. An untyped nil is
// accepted as well.
type Null struct{}

// Column is a type-erased handle on a Sequence, used to build a Table from
// columns of different element types. It is implemented by *Sequence[T]
// only.
type Column interface {
	// Len returns the number of logical positions in the column.
	Len() int
	// Type returns the element type of the column.
	Type() reflect.Type
	// Presence returns the positions holding a value.
	Presence() *roaring.Bitmap
	// Absence returns the positions without a value.
	Absence() *roaring.Bitmap
	// Stats summarizes the content of the column.
	Stats() Stats

	check(v any) error
	pushAny(v any)
	begin() position
	end() position
	advance(p position) position
	valueAny(p position) any
	erase(p position) position
	detach() Column
}

// ColumnView is a read-only view of a table column. Values can be read and
// updated through the returned pointers, but positions can only be added or
// removed through the table.
type ColumnView interface {
	// Len returns the number of logical positions in the column.
	Len() int
	// Type returns the element type of the column.
	Type() reflect.Type
	// Presence returns the positions holding a value.
	Presence() *roaring.Bitmap
	// Absence returns the positions without a value.
	Absence() *roaring.Bitmap
	// Stats summarizes the content of the column.
	Stats() Stats
	// Values returns, per position, a *T pointing to the stored value or an
	// untyped nil when absent.
	Values() []any
}

// Type returns the element type of the sequence.
func (s *Sequence[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

// check returns an error if v can neither be pushed as a value nor as an
// absence.
func (s *Sequence[T]) check(v any) error {
	switch v.(type) {
	case nil, Null, T:
		return nil
	}
	return fmt.Errorf("%w: got %T, want %s", ErrType, v, s.Type())
}

// pushAny pushes v, which must have been accepted by check.
func (s *Sequence[T]) pushAny(v any) {
	switch x := v.(type) {
	case nil, Null:
		s.PushAbsent()
	case T:
		s.Push(x)
	}
}

// valueAny returns the value at p as a *T, or an untyped nil when absent.
func (s *Sequence[T]) valueAny(p position) any {
	if v := s.valueAt(p); v != nil {
		return v
	}
	return nil
}

// detach moves the content of s to a new sequence and leaves s empty.
func (s *Sequence[T]) detach() Column {
	moved := &Sequence[T]{lead: s.lead, slots: s.slots, n: s.n}
	s.lead, s.n = 0, 0
	s.slots = NewSliceStorage[Slot[T]]()
	return moved
}

// columnView hides the mutating methods of a table column.
type columnView struct {
	c Column
}

func (v columnView) Len() int                  { return v.c.Len() }
func (v columnView) Type() reflect.Type        { return v.c.Type() }
func (v columnView) Presence() *roaring.Bitmap { return v.c.Presence() }
func (v columnView) Absence() *roaring.Bitmap  { return v.c.Absence() }
func (v columnView) Stats() Stats              { return v.c.Stats() }

func (v columnView) Values() []any {
	values := make([]any, 0, v.c.Len())
	for p, end := v.c.begin(), v.c.end(); p != end; p = v.c.advance(p) {
		values = append(values, v.c.valueAny(p))
	}
	return values
}
