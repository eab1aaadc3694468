package groupseq

import (
	"iter"
	"slices"
)

// All returns an iterator over (flat index, item) pairs in flat order.
// Mutating the collection mid-iteration invalidates the iterator; the
// next step panics.
func (c *Collection[G, T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		gen := c.gen
		for _, seg := range c.chain.segs {
			for i, item := range seg.items {
				c.ensureUnchanged(gen)
				if !yield(seg.start+i, item) {
					return
				}
			}
		}
	}
}

// Values returns an iterator over items in flat order. Mutating the
// collection mid-iteration invalidates the iterator; the next step
// panics.
func (c *Collection[G, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := c.gen
		for _, seg := range c.chain.segs {
			for _, item := range seg.items {
				c.ensureUnchanged(gen)
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Groups returns an iterator over (key, items) pairs in group first-use
// order, including emptied groups. The items slice is a copy. Mutating
// the collection mid-iteration invalidates the iterator; the next step
// panics.
func (c *Collection[G, T]) Groups() iter.Seq2[G, []T] {
	return func(yield func(G, []T) bool) {
		gen := c.gen
		for _, seg := range c.chain.segs {
			c.ensureUnchanged(gen)
			if !yield(seg.key, slices.Clone(seg.items)) {
				return
			}
		}
	}
}

func (c *Collection[G, T]) ensureUnchanged(gen uint64) {
	if c.gen != gen {
		panic("groupseq: collection modified during iteration")
	}
}
