package flagfield

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap exports the set flags as a roaring bitmap, one member per set
// index. The conversion is in-memory only; the field's byte layout is not
// part of the result.
func (f *Field[D, P]) Bitmap() *roaring.Bitmap {
	rb := roaring.New()
	for i, b := range f.bits {
		for b != 0 {
			bit := bits.TrailingZeros8(b)
			rb.Add(uint32(i*8 + bit))
			b &= b - 1
		}
	}
	return rb
}

// FromBitmap builds a field of the given capacity from the members of a
// roaring bitmap. Members at or beyond capacity follow the bounds policy:
// Strict panics, Lenient drops them.
func FromBitmap[D Flag, P Policy](capacity int, rb *roaring.Bitmap) *Field[D, P] {
	f := New[D, P](capacity)
	it := rb.Iterator()
	for it.HasNext() {
		f.Set(D(it.Next()))
	}
	return f
}
