package flagfield

import (
	"iter"
	"math/bits"
)

// All reports whether every flag in [0, Size()) is set.
func (f *Field[D, P]) All() bool {
	last := len(f.bits) - 1
	for i, b := range f.bits {
		want := byte(0xFF)
		if i == last {
			want = lastByteMask(f.capacity)
		}
		if b != want {
			return false
		}
	}
	return true
}

// Any reports whether at least one flag is set.
func (f *Field[D, P]) Any() bool {
	for _, b := range f.bits {
		if b != 0 {
			return true
		}
	}
	return false
}

// None reports whether no flag is set.
func (f *Field[D, P]) None() bool { return !f.Any() }

// IsSet reports whether every given flag is set. An empty list is
// vacuously true. Under the Lenient policy an out-of-range flag is never
// set, so it makes the conjunction false; under Strict it panics.
func (f *Field[D, P]) IsSet(flags ...D) bool {
	var p P
	for _, d := range flags {
		i := uint64(d)
		if !p.validate(i, f.capacity) {
			return false
		}
		if f.bits[i/8]&(1<<(i%8)) == 0 {
			return false
		}
	}
	return true
}

// IsClear reports whether every given flag is clear. An empty list is
// vacuously true. Under the Lenient policy an out-of-range flag is
// trivially clear, so it does not break the conjunction.
func (f *Field[D, P]) IsClear(flags ...D) bool {
	var p P
	for _, d := range flags {
		i := uint64(d)
		if !p.validate(i, f.capacity) {
			continue
		}
		if f.bits[i/8]&(1<<(i%8)) != 0 {
			return false
		}
	}
	return true
}

// ContainsAll reports whether every flag set in other is also set in f:
// the subset test other ⊆ f. Note the asymmetry; this is containment, not
// equality. It panics with *CapacityMismatchError if the capacities
// differ.
func (f *Field[D, P]) ContainsAll(other *Field[D, P]) bool {
	f.mustMatch(other)
	for i, b := range other.bits {
		if f.bits[i]&b != b {
			return false
		}
	}
	return true
}

// Intersects reports whether f and other share at least one set flag.
func (f *Field[D, P]) Intersects(other *Field[D, P]) bool {
	f.mustMatch(other)
	for i, b := range other.bits {
		if f.bits[i]&b != 0 {
			return true
		}
	}
	return false
}

// Disjoint reports whether f and other share no set flag.
func (f *Field[D, P]) Disjoint(other *Field[D, P]) bool {
	return !f.Intersects(other)
}

// Count returns the number of set flags.
func (f *Field[D, P]) Count() int {
	n := 0
	for _, b := range f.bits {
		n += bits.OnesCount8(b)
	}
	return n
}

// Indices returns an iterator over the set flags in ascending index
// order.
func (f *Field[D, P]) Indices() iter.Seq[D] {
	return func(yield func(D) bool) {
		for i, b := range f.bits {
			for b != 0 {
				bit := bits.TrailingZeros8(b)
				if !yield(D(i*8 + bit)) {
					return
				}
				b &= b - 1
			}
		}
	}
}
