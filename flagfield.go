package flagfield

// Field is a fixed-capacity set of boolean flags indexed by the domain
// type D, with out-of-range handling selected by the policy P.
//
// Bit i is stored in byte i/8 at offset i%8. The capacity is fixed when
// the field is constructed and never changes; unused high bits of the
// final byte are kept at zero by every mutating operation.
//
// The zero value is not usable; construct fields with New, NewStrict,
// NewLenient or NewUnchecked.
type Field[D Flag, P Policy] struct {
	bits     []byte
	capacity int
}

// StrictField is a Field under the Strict bounds policy.
type StrictField[D Flag] = Field[D, Strict]

// LenientField is a Field under the Lenient bounds policy.
type LenientField[D Flag] = Field[D, Lenient]

// UncheckedField is a Field under the Unchecked bounds policy.
type UncheckedField[D Flag] = Field[D, Unchecked]

// New creates an all-clear field holding capacity flags, then sets the
// given initial flags. It panics if capacity is not positive; that is a
// construction-time invariant independent of the bounds policy.
func New[D Flag, P Policy](capacity int, flags ...D) *Field[D, P] {
	if capacity <= 0 {
		panic("flagfield: capacity must be positive")
	}
	f := &Field[D, P]{
		bits:     make([]byte, (capacity+7)/8),
		capacity: capacity,
	}
	return f.Set(flags...)
}

// NewStrict creates a field under the Strict policy.
func NewStrict[D Flag](capacity int, flags ...D) *Field[D, Strict] {
	return New[D, Strict](capacity, flags...)
}

// NewLenient creates a field under the Lenient policy.
func NewLenient[D Flag](capacity int, flags ...D) *Field[D, Lenient] {
	return New[D, Lenient](capacity, flags...)
}

// NewUnchecked creates a field under the Unchecked policy.
func NewUnchecked[D Flag](capacity int, flags ...D) *Field[D, Unchecked] {
	return New[D, Unchecked](capacity, flags...)
}

// Clone returns a deep copy of the field.
func (f *Field[D, P]) Clone() *Field[D, P] {
	return &Field[D, P]{
		bits:     append([]byte(nil), f.bits...),
		capacity: f.capacity,
	}
}

// Size returns the number of flags the field manages.
func (f *Field[D, P]) Size() int { return f.capacity }

// SizeInBytes returns the storage size, ceil(Size()/8).
func (f *Field[D, P]) SizeInBytes() int { return len(f.bits) }

// lastByteMask covers the valid bits of the final storage byte.
func lastByteMask(capacity int) byte {
	if r := capacity % 8; r != 0 {
		return byte(1<<r - 1)
	}
	return 0xFF
}

// remask restores the padding invariant after a whole-byte write.
func (f *Field[D, P]) remask() {
	f.bits[len(f.bits)-1] &= lastByteMask(f.capacity)
}

// mustMatch guards binary operations against mixed capacities.
func (f *Field[D, P]) mustMatch(other *Field[D, P]) {
	if f.capacity != other.capacity {
		panic(&CapacityMismatchError{Have: other.capacity, Want: f.capacity})
	}
}
