package packbits

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// FromRoaring creates a set with the same membership as a 32-bit roaring
// bitmap.
func FromRoaring(rb *roaring.Bitmap) *BitSet {
	b := New()
	it := rb.Iterator()
	for it.HasNext() {
		b.Insert(int(it.Next()))
	}
	return b
}

// ToRoaring converts the set to a 32-bit roaring bitmap. Panics if any
// member exceeds the 32-bit range; roaring cannot represent it and silent
// truncation would corrupt the membership.
func (b *BitSet) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	b.ForEach(func(v int) bool {
		if v > math.MaxUint32 {
			panic("packbits: member beyond 32-bit roaring range")
		}
		rb.Add(uint32(v))
		return true
	})
	return rb
}
