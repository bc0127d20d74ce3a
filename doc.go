// Package flagfield provides a fixed-capacity, domain-typed bit-flag
// container: up to N independent boolean flags packed into ceil(N/8) bytes,
// addressed through a caller-defined integer domain type.
//
// # Domains
//
// The domain type parameter keeps flag sets from unrelated subsystems
// apart at compile time. Two fields with different domain types are
// distinct, non-interchangeable Go types even when their capacities match:
//
//	type WindowFlag uint8
//
//	const (
//	    WindowInitialized WindowFlag = iota
//	    WindowClosed
//	    WindowMinimized
//	    WindowFullscreen
//	    windowFlagCount
//	)
//
//	ff := flagfield.NewStrict[WindowFlag](int(windowFlagCount))
//	ff.Set(WindowInitialized, WindowMinimized)
//
// # Bounds policies
//
// Out-of-range handling is a compile-time choice carried by the second
// type parameter:
//
//   - Strict panics with *OutOfRangeError (recoverable; the panic value
//     implements error and matches ErrOutOfRange via errors.Is).
//   - Lenient silently ignores out-of-range indices on mutation and
//     reports them as not set on query.
//   - Unchecked performs no validation at all. Behavior on a bad index is
//     undefined; use it only where indices are already proven in range.
//
// # Storage
//
// A Field owns exactly SizeInBytes() = ceil(N/8) bytes. Bit i lives in
// byte i/8 at offset i%8. Unused high bits of the final byte are always
// zero; every whole-byte write re-applies the final-byte mask, so reads
// never have to. Bytes and LoadBytes expose this layout verbatim for
// interop.
//
// # Ordering
//
// Compare and Less order fields by population count only. This ordering is
// deliberately weak: two fields with different bit patterns but the same
// count tie under Compare yet are not Equal.
//
// Fields are plain in-memory values with no internal synchronization.
// Sharing one across goroutines requires external locking by the caller.
package flagfield
