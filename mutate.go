package flagfield

// Set sets the given flags. Out-of-range flags follow the bounds policy.
// It returns the receiver for chaining.
func (f *Field[D, P]) Set(flags ...D) *Field[D, P] {
	var p P
	for _, d := range flags {
		i := uint64(d)
		if !p.validate(i, f.capacity) {
			continue
		}
		f.bits[i/8] |= 1 << (i % 8)
	}
	return f
}

// SetAll sets every flag in [0, Size()).
func (f *Field[D, P]) SetAll() *Field[D, P] {
	for i := range f.bits {
		f.bits[i] = 0xFF
	}
	f.remask()
	return f
}

// Clear clears the given flags. Out-of-range flags follow the bounds
// policy.
func (f *Field[D, P]) Clear(flags ...D) *Field[D, P] {
	var p P
	for _, d := range flags {
		i := uint64(d)
		if !p.validate(i, f.capacity) {
			continue
		}
		f.bits[i/8] &^= 1 << (i % 8)
	}
	return f
}

// ClearAll clears every flag.
func (f *Field[D, P]) ClearAll() *Field[D, P] {
	for i := range f.bits {
		f.bits[i] = 0
	}
	return f
}

// Toggle flips the given flags. Out-of-range flags follow the bounds
// policy.
func (f *Field[D, P]) Toggle(flags ...D) *Field[D, P] {
	var p P
	for _, d := range flags {
		i := uint64(d)
		if !p.validate(i, f.capacity) {
			continue
		}
		f.bits[i/8] ^= 1 << (i % 8)
	}
	return f
}

// ToggleAll flips every flag in [0, Size()). It is the in-place
// complement.
func (f *Field[D, P]) ToggleAll() *Field[D, P] {
	for i := range f.bits {
		f.bits[i] = ^f.bits[i]
	}
	f.remask()
	return f
}

// Assign clears the field and then sets exactly the given flag, so the
// field afterwards contains that one flag and nothing else. Contrast with
// Set, which is additive.
func (f *Field[D, P]) Assign(flag D) *Field[D, P] {
	return f.ClearAll().Set(flag)
}

// CopyFrom replaces the field's state with a copy of other's. It panics
// with *CapacityMismatchError if the capacities differ.
func (f *Field[D, P]) CopyFrom(other *Field[D, P]) *Field[D, P] {
	f.mustMatch(other)
	copy(f.bits, other.bits)
	return f
}

// UnionWith sets every flag that is set in other (byte-wise OR).
func (f *Field[D, P]) UnionWith(other *Field[D, P]) *Field[D, P] {
	f.mustMatch(other)
	for i := range f.bits {
		f.bits[i] |= other.bits[i]
	}
	return f
}

// IntersectWith clears every flag that is not set in other (byte-wise
// AND).
func (f *Field[D, P]) IntersectWith(other *Field[D, P]) *Field[D, P] {
	f.mustMatch(other)
	for i := range f.bits {
		f.bits[i] &= other.bits[i]
	}
	return f
}

// DifferenceWith clears every flag that is set in other (byte-wise
// AND-NOT).
func (f *Field[D, P]) DifferenceWith(other *Field[D, P]) *Field[D, P] {
	f.mustMatch(other)
	for i := range f.bits {
		f.bits[i] &^= other.bits[i]
	}
	return f
}

// SymmetricDifferenceWith toggles every flag that is set in other
// (byte-wise XOR).
func (f *Field[D, P]) SymmetricDifferenceWith(other *Field[D, P]) *Field[D, P] {
	f.mustMatch(other)
	for i := range f.bits {
		f.bits[i] ^= other.bits[i]
	}
	return f
}

// Scale keeps the field unchanged when keep is true and clears it
// entirely when keep is false.
func (f *Field[D, P]) Scale(keep bool) *Field[D, P] {
	if !keep {
		f.ClearAll()
	}
	return f
}
