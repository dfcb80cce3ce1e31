package sequence

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStorages = []struct {
	name string
	new  func() Storage[Slot[int]]
}{
	{"slice", func() Storage[Slot[int]] { return NewSliceStorage[Slot[int]]() }},
	{"tree", func() Storage[Slot[int]] { return NewTreeStorage[Slot[int]]() }},
}

func ptr[T any](v T) *T {
	return &v
}

// newTestSequence pushes values in order, nil pushing an absent position.
func newTestSequence(storage Storage[Slot[int]], values []*int) *Sequence[int] {
	s := NewSequenceWithStorage[int](storage)
	for _, v := range values {
		if v == nil {
			s.PushAbsent()
		} else {
			s.Push(*v)
		}
	}
	return s
}

func assertInvariants[T any](t *testing.T, s *Sequence[T]) {
	t.Helper()
	require.GreaterOrEqual(t, s.lead, 0, "leading gap")
	n := s.lead
	for i := 0; i < s.slots.Len(); i++ {
		run := s.slots.At(i).run
		require.GreaterOrEqual(t, run, 0, "run of slot %d", i)
		n += 1 + run
	}
	require.Equal(t, s.n, n, "leading gap plus slots and runs")
}

func TestPushLen(t *testing.T) {
	for _, st := range testStorages {
		t.Run(st.name, func(t *testing.T) {
			s := NewSequenceWithStorage[int](st.new())
			require.Equal(t, 0, s.Len())
			for i := 1; i <= 50; i++ {
				if i%3 == 0 {
					s.Push(i)
				} else {
					s.PushAbsent()
				}
				require.Equal(t, i, s.Len())
				assertInvariants(t, s)
			}
		})
	}
}

func TestSequenceValues(t *testing.T) {
	tests := []struct {
		id     int
		values []*int
	}{
		{1, nil},
		{2, []*int{nil}},
		{3, []*int{nil, nil, nil}},
		{4, []*int{ptr(1)}},
		{5, []*int{ptr(1), ptr(2), ptr(3)}},
		{6, []*int{ptr(1), nil, nil}},
		{7, []*int{nil, ptr(1), nil, ptr(2), ptr(3), nil, nil}},
	}
	for _, st := range testStorages {
		for _, tt := range tests {
			s := newTestSequence(st.new(), tt.values)
			assertInvariants(t, s)
			if diff := cmp.Diff(tt.values, s.Values(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("%s test %d: values mismatch (-want +got):\n%s", st.name, tt.id, diff)
			}
		}
	}
}

func TestSequenceLayout(t *testing.T) {
	s := newTestSequence(NewSliceStorage[Slot[int]](), []*int{nil, ptr(5), nil, nil, ptr(7)})
	require.Equal(t, 5, s.Len())
	assert.Equal(t, 1, s.lead)
	require.Equal(t, 2, s.slots.Len())
	assert.Equal(t, Slot[int]{value: 5, run: 2}, *s.slots.At(0))
	assert.Equal(t, Slot[int]{value: 7, run: 0}, *s.slots.At(1))
	assert.Equal(t, []*int{nil, ptr(5), nil, nil, ptr(7)}, s.Values())
}

func TestEraseLeadingAbsence(t *testing.T) {
	s := newTestSequence(NewSliceStorage[Slot[int]](), []*int{nil, ptr(5), nil, nil, ptr(7)})
	it := s.Erase(s.Begin())
	assertInvariants(t, s)
	require.Equal(t, 4, s.Len())
	require.Equal(t, []*int{ptr(5), nil, nil, ptr(7)}, s.Values())
	require.True(t, it.Equal(s.Begin()))
	require.Equal(t, 5, *it.Value())
}

func TestErase(t *testing.T) {
	tests := []struct {
		name   string
		values []*int
		at     int
		want   []*int
	}{
		{"leading gap first", []*int{nil, nil, ptr(1)}, 0, []*int{nil, ptr(1)}},
		{"leading gap last", []*int{nil, nil, ptr(1)}, 1, []*int{nil, ptr(1)}},
		{"leading gap only", []*int{nil, nil}, 1, []*int{nil}},
		{"single value", []*int{ptr(1)}, 0, nil},
		{"slot without run", []*int{ptr(1), ptr(2), ptr(3)}, 1, []*int{ptr(1), ptr(3)}},
		{"last slot without run", []*int{ptr(1), ptr(2)}, 1, []*int{ptr(1)}},
		{"first slot without run after gap", []*int{nil, ptr(1), ptr(2)}, 1, []*int{nil, ptr(2)}},
		{"slot with run", []*int{ptr(1), ptr(2), nil, nil, ptr(3)}, 1, []*int{ptr(1), nil, nil, ptr(3)}},
		{"slot with run after run", []*int{ptr(1), nil, ptr(2), nil, ptr(3)}, 2, []*int{ptr(1), nil, nil, ptr(3)}},
		{"last slot with run", []*int{ptr(1), nil, ptr(2), nil}, 2, []*int{ptr(1), nil, nil}},
		{"first slot with run", []*int{ptr(1), nil, nil, ptr(2)}, 0, []*int{nil, nil, ptr(2)}},
		{"first slot with run after gap", []*int{nil, ptr(1), nil, ptr(2)}, 1, []*int{nil, nil, ptr(2)}},
		{"run first", []*int{ptr(1), nil, nil, nil, ptr(2)}, 1, []*int{ptr(1), nil, nil, ptr(2)}},
		{"run middle", []*int{ptr(1), nil, nil, nil, ptr(2)}, 2, []*int{ptr(1), nil, nil, ptr(2)}},
		{"run last", []*int{ptr(1), nil, nil, ptr(2)}, 2, []*int{ptr(1), nil, ptr(2)}},
		{"trailing run last", []*int{ptr(1), nil, nil}, 2, []*int{ptr(1), nil}},
	}
	for _, st := range testStorages {
		for _, tt := range tests {
			t.Run(st.name+"/"+tt.name, func(t *testing.T) {
				s := newTestSequence(st.new(), tt.values)
				it := s.Begin()
				for range tt.at {
					it.Next()
				}
				got := s.Erase(it)
				assertInvariants(t, s)
				require.Equal(t, len(tt.values)-1, s.Len())
				if diff := cmp.Diff(tt.want, s.Values(), cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("values mismatch (-want +got):\n%s", diff)
				}
				want := s.Begin()
				for range tt.at {
					want.Next()
				}
				require.True(t, got.Equal(want), "got position %+v, want %+v", got.p, want.p)
				require.Equal(t, tt.at == len(tt.want), got.Done())
			})
		}
	}
}

func TestEraseAll(t *testing.T) {
	for _, st := range testStorages {
		s := newTestSequence(st.new(), []*int{nil, ptr(1), nil, ptr(2), ptr(3), nil, nil, ptr(4)})
		it := s.Begin()
		for s.Len() > 0 {
			it = s.Erase(it)
			assertInvariants(t, s)
		}
		require.True(t, it.Done(), st.name)
		require.Empty(t, s.Values(), st.name)
	}
}

func TestEraseEnd(t *testing.T) {
	s := newTestSequence(NewSliceStorage[Slot[int]](), []*int{ptr(1), nil})
	require.PanicsWithValue(t, "sequence: erase at end of sequence", func() {
		s.Erase(s.End())
	})
	require.Equal(t, 2, s.Len())
}

func TestEraseForeignIterator(t *testing.T) {
	s := newTestSequence(NewSliceStorage[Slot[int]](), []*int{ptr(1)})
	other := newTestSequence(NewSliceStorage[Slot[int]](), []*int{ptr(1)})
	require.Panics(t, func() {
		s.Erase(other.Begin())
	})
	require.Equal(t, 1, s.Len())
	require.Equal(t, 1, other.Len())
}

func TestIterator(t *testing.T) {
	s := newTestSequence(NewSliceStorage[Slot[int]](), []*int{nil, ptr(1), nil})

	it := s.Begin()
	require.False(t, it.Done())
	require.Nil(t, it.Value())
	it.Next()
	require.Equal(t, 1, *it.Value())
	it.Next()
	require.Nil(t, it.Value())
	it.Next()
	require.True(t, it.Done())
	require.True(t, it.Equal(s.End()))
	require.Nil(t, it.Value())

	it.Next()
	require.True(t, it.Done(), "advancing an exhausted iterator")

	empty := NewSequence[int]()
	require.True(t, empty.Begin().Done())
	require.True(t, empty.Begin().Equal(empty.End()))

	gap := newTestSequence(NewSliceStorage[Slot[int]](), []*int{nil, nil})
	require.False(t, gap.Begin().Equal(gap.End()))
}

func TestIteratorAddress(t *testing.T) {
	s := newTestSequence(NewTreeStorage[Slot[int]](), []*int{ptr(1), nil, ptr(2)})
	for _, v := range s.All() {
		if v != nil {
			*v += 5
		}
	}
	require.Equal(t, []*int{ptr(6), nil, ptr(7)}, s.Values())
}

func TestAll(t *testing.T) {
	s := newTestSequence(NewSliceStorage[Slot[int]](), []*int{nil, ptr(1), nil, ptr(2)})

	for range 2 {
		var positions []int
		for i := range s.All() {
			positions = append(positions, i)
		}
		require.Equal(t, []int{0, 1, 2, 3}, positions)
	}

	n := 0
	for range s.All() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestNewSequenceWithStorage(t *testing.T) {
	storage := NewSliceStorage[Slot[int]]()
	storage.Append(Slot[int]{value: 1})
	require.Panics(t, func() {
		NewSequenceWithStorage[int](storage)
	})
}
