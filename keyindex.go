package groupseq

// keyIndex maps group keys to their segments for O(1) group lookup.
// A key stays registered for the lifetime of the collection, even when
// its group is emptied; only a full reset drops registrations.
type keyIndex[G comparable, T Grouped[G]] struct {
	m map[G]*segment[G, T]
}

func newKeyIndex[G comparable, T Grouped[G]]() *keyIndex[G, T] {
	return &keyIndex[G, T]{
		m: make(map[G]*segment[G, T]),
	}
}

func (idx *keyIndex[G, T]) lookup(key G) (*segment[G, T], bool) {
	seg, ok := idx.m[key]
	return seg, ok
}

func (idx *keyIndex[G, T]) register(key G, seg *segment[G, T]) {
	idx.m[key] = seg
}

func (idx *keyIndex[G, T]) reset() {
	idx.m = make(map[G]*segment[G, T])
}
