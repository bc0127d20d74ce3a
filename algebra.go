package flagfield

import "math/bits"

// Union returns a new field with every flag set in f or other.
func (f *Field[D, P]) Union(other *Field[D, P]) *Field[D, P] {
	return f.Clone().UnionWith(other)
}

// Intersect returns a new field with every flag set in both f and other.
func (f *Field[D, P]) Intersect(other *Field[D, P]) *Field[D, P] {
	return f.Clone().IntersectWith(other)
}

// Difference returns a new field with f's flags minus other's.
func (f *Field[D, P]) Difference(other *Field[D, P]) *Field[D, P] {
	return f.Clone().DifferenceWith(other)
}

// SymmetricDifference returns a new field with the flags set in exactly
// one of f and other.
func (f *Field[D, P]) SymmetricDifference(other *Field[D, P]) *Field[D, P] {
	return f.Clone().SymmetricDifferenceWith(other)
}

// With returns a copy of f with the given flags additionally set.
func (f *Field[D, P]) With(flags ...D) *Field[D, P] {
	return f.Clone().Set(flags...)
}

// Without returns a copy of f with the given flags cleared.
func (f *Field[D, P]) Without(flags ...D) *Field[D, P] {
	return f.Clone().Clear(flags...)
}

// Toggled returns a copy of f with the given flags flipped.
func (f *Field[D, P]) Toggled(flags ...D) *Field[D, P] {
	return f.Clone().Toggle(flags...)
}

// Only returns the intersection of f with the singleton {flag}: a field
// holding flag alone if it is set in f, otherwise an empty field.
func (f *Field[D, P]) Only(flag D) *Field[D, P] {
	out := New[D, P](f.capacity)
	if f.IsSet(flag) {
		out.Set(flag)
	}
	return out
}

// Scaled returns an identical copy when keep is true and an all-clear
// field of the same capacity when keep is false.
func (f *Field[D, P]) Scaled(keep bool) *Field[D, P] {
	return f.Clone().Scale(keep)
}

// Complement returns a new field with every flag flipped.
func (f *Field[D, P]) Complement() *Field[D, P] {
	return f.Clone().ToggleAll()
}

// Acquire sets the lowest currently-clear flag and returns its index.
// It models allocating the next free flag; ok is false, and the field is
// unchanged, when every flag is already set. O(Size()) worst case.
func (f *Field[D, P]) Acquire() (flag D, ok bool) {
	for i, b := range f.bits {
		if b == 0xFF {
			continue
		}
		bit := bits.TrailingZeros8(^b)
		idx := i*8 + bit
		if idx >= f.capacity {
			break
		}
		f.bits[i] |= 1 << bit
		return D(idx), true
	}
	return flag, false
}

// Release clears the lowest currently-set flag and returns its index.
// It models releasing the lowest held flag; ok is false, and the field is
// unchanged, when no flag is set. O(Size()) worst case.
func (f *Field[D, P]) Release() (flag D, ok bool) {
	for i, b := range f.bits {
		if b == 0 {
			continue
		}
		bit := bits.TrailingZeros8(b)
		f.bits[i] &^= 1 << bit
		return D(i*8 + bit), true
	}
	return flag, false
}
