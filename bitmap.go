package groupseq

import "github.com/RoaringBitmap/roaring/v2"

// IndexBitmap returns the flat indices occupied by the given groups as a
// Roaring bitmap, one contiguous range per non-empty group. Unknown and
// emptied groups contribute nothing. The bitmap is a snapshot; later
// mutations do not update it.
//
// Use it to intersect or union group membership with other index sets:
//
//	eligible := col.IndexBitmap("billing", "mail")
//	eligible.And(matchesFilter)
func (c *Collection[G, T]) IndexBitmap(keys ...G) *roaring.Bitmap {
	rb := roaring.New()
	for _, key := range keys {
		seg, ok := c.index.lookup(key)
		if !ok || seg.count() == 0 {
			continue
		}
		rb.AddRange(uint64(seg.start), uint64(seg.end()))
	}
	return rb
}
