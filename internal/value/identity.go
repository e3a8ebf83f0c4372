package value

import "unsafe"

// ptrOf exposes a Value handle's address for the pointer-identity ordering
// used by Map keys on structured/Function values (spec.md §3.2) and for
// equality's "same handle" fast path.
func ptrOf(v *Value) unsafe.Pointer { return unsafe.Pointer(v) }

// SameHandle reports whether a and b are the exact same shared handle.
func SameHandle(a, b *Value) bool { return a == b }
