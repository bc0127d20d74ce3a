package flagfield

import (
	"strconv"
	"strings"
)

// Bytes returns a copy of the field's storage: SizeInBytes() bytes with
// bit i of the field at byte i/8, offset i%8. Padding bits are zero.
func (f *Field[D, P]) Bytes() []byte {
	return append([]byte(nil), f.bits...)
}

// RawBytes returns the field's underlying storage without copying. It is
// an aliasing escape hatch for interop: mutations through the returned
// slice are visible to the field and bypass the padding invariant, and no
// synchronization is provided. Prefer Bytes unless the copy matters.
func (f *Field[D, P]) RawBytes() []byte {
	return f.bits
}

// LoadBytes replaces the field's state with the given buffer and then
// zeroes the padding bits of the final byte. The buffer must be exactly
// SizeInBytes() long; Strict and Lenient return *BufferSizeError on a
// mismatch, while Unchecked copies what fits with no check (a mismatched
// length is then undefined).
func (f *Field[D, P]) LoadBytes(b []byte) error {
	var p P
	if err := p.validateSize(len(b), len(f.bits)); err != nil {
		return err
	}
	copy(f.bits, b)
	f.remask()
	return nil
}

// String renders the flags index-0-first in groups of eight, e.g.
// "FlagField<12>: 0b00011100 0000" for a 12-flag field with flags 3, 4
// and 5 set.
func (f *Field[D, P]) String() string {
	var sb strings.Builder
	sb.WriteString("FlagField<")
	sb.WriteString(strconv.Itoa(f.capacity))
	sb.WriteString(">: 0b")
	for i := 0; i < f.capacity; i++ {
		if i != 0 && i%8 == 0 {
			sb.WriteByte(' ')
		}
		if f.bits[i/8]&(1<<(i%8)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
