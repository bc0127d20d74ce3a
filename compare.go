package flagfield

import (
	"bytes"
	"cmp"
)

// Equal reports whether f and other have exactly the same flags set.
// Fields of different capacity are never equal. Padding bits are zero by
// invariant, so a byte comparison is exact.
func (f *Field[D, P]) Equal(other *Field[D, P]) bool {
	if other == nil || f.capacity != other.capacity {
		return false
	}
	return bytes.Equal(f.bits, other.bits)
}

// Compare orders fields by population count only: -1 if f has fewer set
// flags than other, +1 if more, 0 on a tie. The ordering is deliberately
// weak and not consistent with Equal — two fields with different patterns
// but equal counts compare as 0 without being Equal.
func (f *Field[D, P]) Compare(other *Field[D, P]) int {
	return cmp.Compare(f.Count(), other.Count())
}

// Less reports whether f has fewer set flags than other. See Compare for
// the ordering caveat.
func (f *Field[D, P]) Less(other *Field[D, P]) bool {
	return f.Compare(other) < 0
}
