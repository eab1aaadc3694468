package groupseq

import "slices"

// segment holds the items of one group together with the group's placement
// in the flat sequence. Items inside a segment keep insertion order.
type segment[G comparable, T Grouped[G]] struct {
	key   G
	pos   int // ordinal in the chain
	start int // flat index of the first item
	items []T
}

func newSegment[G comparable, T Grouped[G]](key G, capacity int) *segment[G, T] {
	return &segment[G, T]{
		key:   key,
		items: make([]T, 0, capacity),
	}
}

func (s *segment[G, T]) count() int {
	return len(s.items)
}

// end returns the exclusive flat index just past the last item.
// A segment with no items has end == start.
func (s *segment[G, T]) end() int {
	return s.start + len(s.items)
}

func (s *segment[G, T]) get(local int) T {
	return s.items[local]
}

func (s *segment[G, T]) set(local int, item T) {
	s.items[local] = item
}

func (s *segment[G, T]) append(item T) {
	s.items = append(s.items, item)
}

func (s *segment[G, T]) insertAt(local int, item T) {
	s.items = slices.Insert(s.items, local, item)
}

// removeAt deletes the item at the given local offset and returns it.
func (s *segment[G, T]) removeAt(local int) T {
	item := s.items[local]
	s.items = slices.Delete(s.items, local, local+1)
	return item
}

// indexOf returns the local offset of the first item equal to the given
// one, or -1.
func (s *segment[G, T]) indexOf(item T) int {
	return slices.Index(s.items, item)
}

// reset drops all items but keeps the segment registered in the chain.
// start stays pinned so later segments keep valid offsets after the
// caller shifts them.
func (s *segment[G, T]) reset() {
	clear(s.items)
	s.items = s.items[:0]
}
