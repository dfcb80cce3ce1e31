package sequence

import (
	"slices"

	"github.com/tidwall/btree"
)

// Storage is a growable indexed sequence used to back the slots of a
// Sequence. Indexes are dense, starting at 0, and shift down after Delete.
type Storage[E any] interface {
	// Len returns the number of stored elements.
	Len() int
	// At returns the address of the element at index i. The address stays
	// valid until the next Append or Delete.
	At(i int) *E
	// Append adds e after the last element.
	Append(e E)
	// Delete removes the element at index i.
	Delete(i int)
}

// SliceStorage is a Storage backed by a Go slice. Appends are amortized
// O(1) and deletes are O(n).
type SliceStorage[E any] struct {
	items []E
}

// NewSliceStorage creates an empty SliceStorage.
func NewSliceStorage[E any]() *SliceStorage[E] {
	return &SliceStorage[E]{}
}

func (s *SliceStorage[E]) Len() int {
	return len(s.items)
}

func (s *SliceStorage[E]) At(i int) *E {
	return &s.items[i]
}

func (s *SliceStorage[E]) Append(e E) {
	s.items = append(s.items, e)
}

func (s *SliceStorage[E]) Delete(i int) {
	s.items = slices.Delete(s.items, i, i+1)
}

// treeItem keys an element by its insertion order so that the tree keeps
// elements in append order.
type treeItem[E any] struct {
	seq  uint64
	elem E
}

// TreeStorage is a Storage backed by a counted B-tree. Positional lookups
// and deletes are O(log n), which suits long columns erased in the middle.
type TreeStorage[E any] struct {
	tree *btree.BTreeG[*treeItem[E]]
	next uint64
}

// NewTreeStorage creates an empty TreeStorage.
func NewTreeStorage[E any]() *TreeStorage[E] {
	less := func(a, b *treeItem[E]) bool { return a.seq < b.seq }
	return &TreeStorage[E]{
		tree: btree.NewBTreeGOptions(less, btree.Options{NoLocks: true}),
	}
}

func (s *TreeStorage[E]) Len() int {
	return s.tree.Len()
}

func (s *TreeStorage[E]) At(i int) *E {
	item, ok := s.tree.GetAt(i)
	if !ok {
		panic("sequence: storage index out of range")
	}
	return &item.elem
}

func (s *TreeStorage[E]) Append(e E) {
	s.tree.Load(&treeItem[E]{seq: s.next, elem: e})
	s.next++
}

func (s *TreeStorage[E]) Delete(i int) {
	if _, ok := s.tree.DeleteAt(i); !ok {
		panic("sequence: storage index out of range")
	}
}
