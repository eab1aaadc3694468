package groupseq

// chain keeps segments in group-creation order and maintains their flat
// placement. At every point the segment ranges [start, end) partition
// [0, total): each segment starts where the previous one ends, with
// zero-width segments allowed anywhere in between.
type chain[G comparable, T Grouped[G]] struct {
	segs  []*segment[G, T]
	total int
}

func newChain[G comparable, T Grouped[G]]() *chain[G, T] {
	return &chain[G, T]{}
}

// append places a fresh segment at the end of the chain.
func (ch *chain[G, T]) append(seg *segment[G, T]) {
	seg.pos = len(ch.segs)
	seg.start = ch.total
	ch.segs = append(ch.segs, seg)
}

// locate resolves a flat index to its owning segment and local offset.
// Zero-width segments own no index and are skipped by the scan.
func (ch *chain[G, T]) locate(index int) (*segment[G, T], int, bool) {
	if index < 0 || index >= ch.total {
		return nil, 0, false
	}
	for _, seg := range ch.segs {
		if index < seg.end() {
			return seg, index - seg.start, true
		}
	}
	return nil, 0, false
}

// shiftAfter moves the start of every segment after seg by delta and
// adjusts the total. Callers invoke it in the same mutation that grew or
// shrank seg, so readers never observe a stale placement.
func (ch *chain[G, T]) shiftAfter(seg *segment[G, T], delta int) {
	for _, s := range ch.segs[seg.pos+1:] {
		s.start += delta
	}
	ch.total += delta
}

// tail returns the last segment in chain order, or nil for an empty chain.
func (ch *chain[G, T]) tail() *segment[G, T] {
	if len(ch.segs) == 0 {
		return nil
	}
	return ch.segs[len(ch.segs)-1]
}

// reset drops every segment and zeroes the total.
func (ch *chain[G, T]) reset() {
	ch.segs = nil
	ch.total = 0
}
