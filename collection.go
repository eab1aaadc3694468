package groupseq

import (
	"reflect"
	"slices"
	"time"
)

// Grouped is the capability an item must provide: report the key of the
// group it belongs to. The key is read once, when the item enters the
// collection; changing what GroupKey returns afterwards has no effect on
// placement.
type Grouped[G comparable] interface {
	comparable

	// GroupKey returns the key of the group the item belongs to.
	GroupKey() G
}

// Collection presents items tagged with a group key as one flat,
// order-preserving, randomly indexable sequence. Items of the same group
// stay contiguous; groups appear in the order they first received an item.
// Group lookups are O(1) via the key index, flat-index lookups walk the
// group chain.
//
// A Collection is not safe for concurrent use.
type Collection[G comparable, T Grouped[G]] struct {
	chain *chain[G, T]
	index *keyIndex[G, T]

	added   []ItemAddedFunc[T]
	removed []ItemRemovedFunc[T]

	gen         uint64 // bumped on every mutation, fails iterators fast
	dispatching bool   // set while observers run

	groupCapacity int
	metrics       MetricsCollector
	logger        *Logger
}

// New creates an empty Collection.
func New[G comparable, T Grouped[G]](optFns ...Option) *Collection[G, T] {
	o := applyOptions(optFns)

	return &Collection[G, T]{
		chain:         newChain[G, T](),
		index:         newKeyIndex[G, T](),
		groupCapacity: o.groupCapacity,
		metrics:       o.metricsCollector,
		logger:        o.logger,
	}
}

// ensure returns the segment for key, materializing a new segment at the
// end of the chain on first use.
func (c *Collection[G, T]) ensure(key G) (*segment[G, T], error) {
	if isNil(key) {
		return nil, ErrNilGroupKey
	}
	if seg, ok := c.index.lookup(key); ok {
		return seg, nil
	}

	seg := newSegment[G, T](key, c.groupCapacity)
	c.chain.append(seg)
	c.index.register(key, seg)

	return seg, nil
}

// Add appends item to its group and returns the flat index it landed on.
// A nil item is ignored and reported as index -1. An item whose group key
// is nil is rejected with ErrNilGroupKey.
func (c *Collection[G, T]) Add(item T) (int, error) {
	c.ensureWritable()
	start := time.Now()
	index, err := c.add(item)
	c.metrics.RecordAdd(time.Since(start), err)
	c.logger.LogAdd(index, err)
	return index, err
}

func (c *Collection[G, T]) add(item T) (int, error) {
	if isNil(item) {
		return -1, nil
	}

	seg, err := c.ensure(item.GroupKey())
	if err != nil {
		return -1, err
	}

	index := seg.end()
	seg.append(item)
	c.chain.shiftAfter(seg, 1)
	c.gen++

	c.notifyAdded(item, index)

	return index, nil
}

// Insert places item at the given flat index, valid between 0 and Count()
// inclusive. The item joins the group owning that position regardless of
// its own group key; Insert(Count(), item) appends to the last group in
// the chain, materializing the item's own group only when the collection
// has none yet. A nil item is ignored.
func (c *Collection[G, T]) Insert(index int, item T) error {
	c.ensureWritable()
	start := time.Now()
	err := c.insert(index, item)
	c.metrics.RecordInsert(time.Since(start), err)
	c.logger.LogInsert(index, err)
	return err
}

func (c *Collection[G, T]) insert(index int, item T) error {
	if isNil(item) {
		return nil
	}
	if index < 0 || index > c.chain.total {
		return &ErrIndexOutOfRange{Index: index, Count: c.chain.total}
	}

	seg, local, ok := c.chain.locate(index)
	if !ok {
		// index == Count(): append to the tail group.
		seg = c.chain.tail()
		if seg == nil {
			var err error
			if seg, err = c.ensure(item.GroupKey()); err != nil {
				return err
			}
		}
		local = seg.count()
	}

	seg.insertAt(local, item)
	c.chain.shiftAfter(seg, 1)
	c.gen++

	c.notifyAdded(item, index)

	return nil
}

// RemoveAt deletes the item at the given flat index, valid between 0 and
// Count() exclusive.
func (c *Collection[G, T]) RemoveAt(index int) error {
	c.ensureWritable()
	start := time.Now()
	err := c.removeAt(index)
	c.metrics.RecordRemove(time.Since(start), err)
	c.logger.LogRemove(index, err)
	return err
}

func (c *Collection[G, T]) removeAt(index int) error {
	seg, local, ok := c.chain.locate(index)
	if !ok {
		return &ErrIndexOutOfRange{Index: index, Count: c.chain.total}
	}

	item := seg.removeAt(local)
	c.chain.shiftAfter(seg, -1)
	c.gen++

	c.notifyRemoved(item, index)

	return nil
}

// Set replaces the item at the given flat index in place. The position
// keeps its group regardless of the new item's own group key. Observers
// see a removal of the old item and an addition of the new one, both at
// the same unchanged flat index. A nil item is ignored.
func (c *Collection[G, T]) Set(index int, item T) error {
	c.ensureWritable()
	start := time.Now()
	err := c.set(index, item)
	c.metrics.RecordSet(time.Since(start), err)
	c.logger.LogSet(index, err)
	return err
}

func (c *Collection[G, T]) set(index int, item T) error {
	if isNil(item) {
		return nil
	}

	seg, local, ok := c.chain.locate(index)
	if !ok {
		return &ErrIndexOutOfRange{Index: index, Count: c.chain.total}
	}

	old := seg.get(local)
	seg.set(local, item)
	c.gen++

	c.notifyRemoved(old, index)
	c.notifyAdded(item, index)

	return nil
}

// Remove deletes the first occurrence of item and reports whether one was
// removed. Observers receive the flat index the item held. A nil item, or
// an item whose group was never registered, removes nothing.
func (c *Collection[G, T]) Remove(item T) bool {
	c.ensureWritable()
	start := time.Now()
	index, ok := c.remove(item)
	c.metrics.RecordRemove(time.Since(start), nil)
	c.logger.LogRemove(index, nil)
	return ok
}

func (c *Collection[G, T]) remove(item T) (int, bool) {
	if isNil(item) {
		return -1, false
	}

	seg, ok := c.index.lookup(item.GroupKey())
	if !ok {
		return -1, false
	}

	local := seg.indexOf(item)
	if local < 0 {
		return -1, false
	}

	index := seg.start + local
	seg.removeAt(local)
	c.chain.shiftAfter(seg, -1)
	c.gen++

	c.notifyRemoved(item, index)

	return index, true
}

// RemoveGroup removes every item of the given group and reports whether
// the group was registered. The group stays registered with a zero-width
// segment in its chain position. Items leave back to front; each observer
// call carries the flat index the item held at that moment.
func (c *Collection[G, T]) RemoveGroup(key G) bool {
	c.ensureWritable()
	start := time.Now()
	removed, ok := c.removeGroup(key)
	c.metrics.RecordClear(removed, time.Since(start))
	c.logger.LogClear("group", removed)
	return ok
}

func (c *Collection[G, T]) removeGroup(key G) (int, bool) {
	seg, ok := c.index.lookup(key)
	if !ok {
		return 0, false
	}

	removed := seg.count()
	c.gen++

	for i := seg.count() - 1; i >= 0; i-- {
		item := seg.removeAt(i)
		c.chain.shiftAfter(seg, -1)
		c.notifyRemoved(item, seg.start+i)
	}

	return removed, true
}

// ClearGroup empties the given group in one pass, keeping it registered.
// Observers are then told about each removed item, back to front, with
// the flat index it held before the clear. Unknown groups are a no-op.
func (c *Collection[G, T]) ClearGroup(key G) {
	c.ensureWritable()
	start := time.Now()
	cleared := c.clearGroup(key)
	c.metrics.RecordClear(cleared, time.Since(start))
	c.logger.LogClear("group", cleared)
}

func (c *Collection[G, T]) clearGroup(key G) int {
	seg, ok := c.index.lookup(key)
	if !ok {
		return 0
	}

	cleared := slices.Clone(seg.items)
	base := seg.start
	seg.reset()
	c.chain.shiftAfter(seg, -len(cleared))
	c.gen++

	for i := len(cleared) - 1; i >= 0; i-- {
		c.notifyRemoved(cleared[i], base+i)
	}

	return len(cleared)
}

// Clear removes every item and every group registration, so group
// first-use order starts over. Observers are told about each removed item,
// back to front, with the flat index it held before the clear.
func (c *Collection[G, T]) Clear() {
	c.ensureWritable()
	start := time.Now()
	cleared := c.clearAll()
	c.metrics.RecordClear(cleared, time.Since(start))
	c.logger.LogClear("all", cleared)
}

func (c *Collection[G, T]) clearAll() int {
	// Flat order means the snapshot position is the flat index.
	items := make([]T, 0, c.chain.total)
	for _, seg := range c.chain.segs {
		items = append(items, seg.items...)
	}

	c.chain.reset()
	c.index.reset()
	c.gen++

	for i := len(items) - 1; i >= 0; i-- {
		c.notifyRemoved(items[i], i)
	}

	return len(items)
}

// Get returns the item at the given flat index.
func (c *Collection[G, T]) Get(index int) (T, bool) {
	seg, local, ok := c.chain.locate(index)
	if !ok {
		var zero T
		return zero, false
	}
	return seg.get(local), true
}

// IndexOf returns the flat index of the first occurrence of item, or -1.
func (c *Collection[G, T]) IndexOf(item T) int {
	if isNil(item) {
		return -1
	}

	seg, ok := c.index.lookup(item.GroupKey())
	if !ok {
		return -1
	}

	local := seg.indexOf(item)
	if local < 0 {
		return -1
	}

	return seg.start + local
}

// Contains reports whether item is present.
func (c *Collection[G, T]) Contains(item T) bool {
	return c.IndexOf(item) >= 0
}

// ContainsKey reports whether the group is registered. Emptied groups stay
// registered until Clear.
func (c *Collection[G, T]) ContainsKey(key G) bool {
	_, ok := c.index.lookup(key)
	return ok
}

// CountOf returns the number of items in the given group, zero for
// unknown groups.
func (c *Collection[G, T]) CountOf(key G) int {
	seg, ok := c.index.lookup(key)
	if !ok {
		return 0
	}
	return seg.count()
}

// AllOf returns a copy of the given group's items in order, nil for
// unknown groups.
func (c *Collection[G, T]) AllOf(key G) []T {
	seg, ok := c.index.lookup(key)
	if !ok {
		return nil
	}
	return slices.Clone(seg.items)
}

// Count returns the total number of items across all groups.
func (c *Collection[G, T]) Count() int {
	return c.chain.total
}

// GroupCount returns the number of registered groups, including emptied
// ones.
func (c *Collection[G, T]) GroupCount() int {
	return len(c.chain.segs)
}

// Keys returns the registered group keys in first-use order, including
// emptied groups.
func (c *Collection[G, T]) Keys() []G {
	keys := make([]G, len(c.chain.segs))
	for i, seg := range c.chain.segs {
		keys[i] = seg.key
	}
	return keys
}

// isNil reports whether v is nil, unwrapping typed nil pointers boxed in
// an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
