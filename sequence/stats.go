package sequence

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// maxBitmapLen is the number of positions a roaring bitmap can address.
const maxBitmapLen uint64 = 1 << 32

// Stats summarizes the content of a sequence.
type Stats struct {
	Len        int // logical positions
	Present    int // stored values
	Absent     int // absent positions
	LeadingGap int // absent positions before the first value
	LongestGap int // longest run of consecutive absent positions
}

// Density returns the share of present positions, or 0 for an empty
// sequence.
func (st Stats) Density() float64 {
	if st.Len == 0 {
		return 0
	}
	return float64(st.Present) / float64(st.Len)
}

// Stats summarizes the content of the sequence.
func (s *Sequence[T]) Stats() Stats {
	st := Stats{
		Len:        s.n,
		Present:    s.slots.Len(),
		LeadingGap: s.lead,
	}
	for _, g := range s.gaps() {
		n := g.len()
		st.Absent += n
		if n > st.LongestGap {
			st.LongestGap = n
		}
	}
	return st
}

// Presence returns the logical positions of the sequence holding a value.
// Bitmaps address 32-bit positions: Presence panics if the sequence is
// longer than 1<<32.
func (s *Sequence[T]) Presence() *roaring.Bitmap {
	s.checkBitmapLen()
	bm := roaring.New()
	p := s.lead
	for i := 0; i < s.slots.Len(); i++ {
		bm.Add(uint32(p))
		p += 1 + s.slots.At(i).run
	}
	return bm
}

// Absence returns the logical positions of the sequence without a value.
// Like Presence, it panics if the sequence is longer than 1<<32.
func (s *Sequence[T]) Absence() *roaring.Bitmap {
	s.checkBitmapLen()
	bm := roaring.New()
	for _, g := range s.gaps() {
		bm.AddRange(uint64(g.start), uint64(g.end)+1)
	}
	return bm
}

func (s *Sequence[T]) checkBitmapLen() {
	if uint64(s.n) > maxBitmapLen {
		panic(fmt.Sprintf("sequence: %d positions exceed the bitmap range", s.n))
	}
}
