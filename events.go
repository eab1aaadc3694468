package groupseq

// ItemAddedFunc observes items entering the collection. index is the flat
// index the item occupies after the mutation.
type ItemAddedFunc[T any] func(item T, index int)

// ItemRemovedFunc observes items leaving the collection. index is the flat
// index the item occupied before the mutation.
type ItemRemovedFunc[T any] func(item T, index int)

// OnItemAdded registers an observer for additions. Observers run
// synchronously, in registration order, after the mutation is applied.
// A nil fn is ignored.
func (c *Collection[G, T]) OnItemAdded(fn ItemAddedFunc[T]) {
	if fn == nil {
		return
	}
	c.added = append(c.added, fn)
}

// OnItemRemoved registers an observer for removals. Observers run
// synchronously, in registration order, after the mutation is applied.
// A nil fn is ignored.
func (c *Collection[G, T]) OnItemRemoved(fn ItemRemovedFunc[T]) {
	if fn == nil {
		return
	}
	c.removed = append(c.removed, fn)
}

// ensureWritable rejects mutations issued from inside an observer.
// Allowing them would re-enter the mutation path mid-dispatch with
// indices the observer is still consuming.
func (c *Collection[G, T]) ensureWritable() {
	if c.dispatching {
		panic("groupseq: collection mutated during notification dispatch")
	}
}

func (c *Collection[G, T]) notifyAdded(item T, index int) {
	if len(c.added) == 0 {
		return
	}
	c.dispatching = true
	defer func() { c.dispatching = false }()
	for _, fn := range c.added {
		fn(item, index)
	}
}

func (c *Collection[G, T]) notifyRemoved(item T, index int) {
	if len(c.removed) == 0 {
		return
	}
	c.dispatching = true
	defer func() { c.dispatching = false }()
	for _, fn := range c.removed {
		fn(item, index)
	}
}
