package flagfield

// Flag is the constraint for domain types: any defined integer type.
// Defining a named type per flag domain (e.g. `type WindowFlag uint8`)
// gives each domain its own, non-interchangeable Field instantiation.
type Flag interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Policy is the constraint for bounds-check policies. Exactly three
// policies exist: Strict, Lenient and Unchecked. The policy is part of the
// Field's type, so the chosen mode is fixed at compile time and applies
// uniformly to every operation on the instance.
type Policy interface {
	Strict | Lenient | Unchecked

	// validate reports whether index may be acted on. Strict panics
	// instead of returning false.
	validate(index uint64, capacity int) bool

	// validateSize checks an imported buffer length against the field's
	// storage size.
	validateSize(got, want int) error
}

// Strict panics with *OutOfRangeError on any out-of-range index and
// rejects mis-sized buffers on LoadBytes.
type Strict struct{}

// Lenient ignores out-of-range indices on mutation, reports them as not
// set on query, and rejects mis-sized buffers on LoadBytes.
type Lenient struct{}

// Unchecked performs no validation. An out-of-range index is undefined
// behavior: it may panic with a runtime bounds error or silently corrupt
// the padding bits of the final byte. Reserved for call sites where
// indices are already proven in range.
type Unchecked struct{}

func (Strict) validate(index uint64, capacity int) bool {
	if index >= uint64(capacity) {
		panic(&OutOfRangeError{Index: index, Capacity: capacity})
	}
	return true
}

func (Strict) validateSize(got, want int) error {
	if got != want {
		return &BufferSizeError{Got: got, Want: want}
	}
	return nil
}

func (Lenient) validate(index uint64, capacity int) bool {
	return index < uint64(capacity)
}

func (Lenient) validateSize(got, want int) error {
	if got != want {
		return &BufferSizeError{Got: got, Want: want}
	}
	return nil
}

func (Unchecked) validate(index uint64, capacity int) bool { return true }

func (Unchecked) validateSize(got, want int) error { return nil }
