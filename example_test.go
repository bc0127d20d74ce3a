package flagfield_test

import (
	"fmt"

	"github.com/hupe1980/flagfield"
)

// ConnState is a protocol-state flag domain. It is a distinct type from
// any other flag domain, so its fields cannot be mixed up with fields of
// the same capacity from elsewhere.
type ConnState uint8

const (
	ConnHandshake ConnState = iota
	ConnEstablished
	ConnDraining
	ConnClosed
	connStateCount
)

// Example demonstrates basic flag manipulation over a named domain.
func Example() {
	ff := flagfield.NewStrict[ConnState](int(connStateCount))

	ff.Set(ConnHandshake)
	ff.Set(ConnEstablished).Clear(ConnHandshake)

	fmt.Println(ff.IsSet(ConnEstablished))
	fmt.Println(ff.IsSet(ConnClosed))
	fmt.Println(ff.Count())
	// Output:
	// true
	// false
	// 1
}

// Example_algebra demonstrates the value-producing set operations.
func Example_algebra() {
	a := flagfield.NewStrict[uint](8, 1, 2)
	b := flagfield.NewStrict[uint](8, 2, 3)

	fmt.Println(a.Intersect(b))
	fmt.Println(a.Union(b))
	fmt.Println(a.SymmetricDifference(b))
	// Output:
	// FlagField<8>: 0b00100000
	// FlagField<8>: 0b01110000
	// FlagField<8>: 0b01010000
}

// Example_byteInterop demonstrates the raw-byte boundary.
func Example_byteInterop() {
	ff := flagfield.NewStrict[uint](12).SetAll()

	// Bits 12-15 of the second byte are padding and stay zero.
	fmt.Printf("0x%02x 0x%02x\n", ff.Bytes()[0], ff.Bytes()[1])

	fresh := flagfield.NewStrict[uint](12)
	if err := fresh.LoadBytes(ff.Bytes()); err != nil {
		panic(err)
	}
	fmt.Println(fresh.Equal(ff))
	// Output:
	// 0xff 0x0f
	// true
}

// Example_acquire demonstrates the allocate/release step operations.
func Example_acquire() {
	ff := flagfield.NewStrict[uint](4, 0, 1, 3)

	if flag, ok := ff.Acquire(); ok {
		fmt.Println("acquired", flag)
	}
	if _, ok := ff.Acquire(); !ok {
		fmt.Println("full")
	}
	if flag, ok := ff.Release(); ok {
		fmt.Println("released", flag)
	}
	// Output:
	// acquired 2
	// full
	// released 0
}
