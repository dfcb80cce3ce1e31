package sequence

import "iter"

// A Slot holds one present value and the number of absent positions that
// immediately follow it.
type Slot[T any] struct {
	value T
	run   int
}

// A Sequence represents a column of values where any position may be absent.
// Only present values are stored. Absent positions are counted, either by
// the leading gap when they precede the first value or by the run of the
// closest preceding Slot.
//
// The zero value is not usable, create sequences with NewSequence or
// NewSequenceWithStorage.
type Sequence[T any] struct {
	lead  int
	slots Storage[Slot[T]]
	n     int
}

// NewSequence creates an empty Sequence backed by a slice.
func NewSequence[T any]() *Sequence[T] {
	return NewSequenceWithStorage[T](NewSliceStorage[Slot[T]]())
}

// NewSequenceWithStorage creates a Sequence using storage to hold its slots.
// The storage must be empty and must not be shared with another sequence.
func NewSequenceWithStorage[T any](storage Storage[Slot[T]]) *Sequence[T] {
	if storage.Len() != 0 {
		panic("sequence: storage is not empty")
	}
	return &Sequence[T]{slots: storage}
}

// Push appends a present value to the sequence.
func (s *Sequence[T]) Push(v T) {
	s.slots.Append(Slot[T]{value: v})
	s.n++
}

// PushAbsent appends an absent position to the sequence.
func (s *Sequence[T]) PushAbsent() {
	if n := s.slots.Len(); n == 0 {
		s.lead++
	} else {
		s.slots.At(n - 1).run++
	}
	s.n++
}

// Len returns the number of logical positions in the sequence, present or
// absent.
func (s *Sequence[T]) Len() int {
	return s.n
}

// Begin returns an iterator on the first position of the sequence.
func (s *Sequence[T]) Begin() Iterator[T] {
	return Iterator[T]{s: s, p: s.begin()}
}

// End returns the past-the-end iterator of the sequence.
func (s *Sequence[T]) End() Iterator[T] {
	return Iterator[T]{s: s, p: s.end()}
}

// Erase removes the position it points to and returns an iterator on the
// position that now occupies it, which is End if it was the last one. Every
// other iterator of the sequence is invalidated. Erase panics if it is End
// or belongs to another sequence.
func (s *Sequence[T]) Erase(it Iterator[T]) Iterator[T] {
	if it.s != s {
		panic("sequence: iterator belongs to another sequence")
	}
	return Iterator[T]{s: s, p: s.erase(it.p)}
}

// All returns an iterator over the logical positions of the sequence and
// their value, nil when absent.
func (s *Sequence[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		i := 0
		for it := s.Begin(); !it.Done(); it.Next() {
			if !yield(i, it.Value()) {
				return
			}
			i++
		}
	}
}

// Values returns the value of every position of the sequence, nil when
// absent. Pointers reference the stored values.
func (s *Sequence[T]) Values() []*T {
	values := make([]*T, 0, s.n)
	for _, v := range s.All() {
		values = append(values, v)
	}
	return values
}

// position locates a logical position in a sequence. slot indexes the
// current slot, or the first one when inside the leading gap. off is
// negative inside the leading gap, where -off positions remain before the
// first slot, 0 on the slot itself and positive inside its trailing run.
type position struct {
	slot int
	off  int
}

func (s *Sequence[T]) begin() position {
	return position{slot: 0, off: -s.lead}
}

func (s *Sequence[T]) end() position {
	return position{slot: s.slots.Len(), off: 0}
}

// advance returns the position following p. Advancing the end position
// returns it unchanged.
func (s *Sequence[T]) advance(p position) position {
	if p.off < 0 {
		p.off++
		return p
	}
	if p.slot >= s.slots.Len() {
		return p
	}
	p.off++
	if p.off > s.slots.At(p.slot).run {
		p.slot++
		p.off = 0
	}
	return p
}

func (s *Sequence[T]) valueAt(p position) *T {
	if p.off != 0 || p.slot >= s.slots.Len() {
		return nil
	}
	return &s.slots.At(p.slot).value
}

func (s *Sequence[T]) erase(p position) position {
	if p.off < 0 {
		s.lead--
		s.n--
		p.off++
		return p
	}
	if p.slot >= s.slots.Len() {
		panic("sequence: erase at end of sequence")
	}
	slot := s.slots.At(p.slot)
	if p.off > 0 {
		slot.run--
		s.n--
		p.off--
		return s.advance(p)
	}
	run := slot.run
	s.n--
	switch {
	case run == 0:
		s.slots.Delete(p.slot)
		return position{slot: p.slot, off: 0}
	case p.slot == 0:
		s.lead += run
		s.slots.Delete(0)
		return position{slot: 0, off: -run}
	default:
		prev := s.slots.At(p.slot - 1)
		off := prev.run + 1
		prev.run += run
		s.slots.Delete(p.slot)
		return position{slot: p.slot - 1, off: off}
	}
}

// An Iterator walks the logical positions of a Sequence forward. Iterators
// are small values and can be copied freely.
type Iterator[T any] struct {
	s *Sequence[T]
	p position
}

// Next moves the iterator to the next position. Next has no effect on an
// exhausted iterator.
func (it *Iterator[T]) Next() {
	it.p = it.s.advance(it.p)
}

// Value returns the address of the value at the current position, or nil
// if the position is absent or the iterator is exhausted.
func (it Iterator[T]) Value() *T {
	return it.s.valueAt(it.p)
}

// Equal reports whether it and other point to the same position of the
// same sequence.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.s == other.s && it.p == other.p
}

// Done reports whether the iterator is exhausted.
func (it Iterator[T]) Done() bool {
	return it.p == it.s.end()
}
