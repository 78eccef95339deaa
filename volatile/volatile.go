// Package volatile provides the load/store primitives used by the generated
// register accessors in package chip. On bare-metal builds the operations
// compile down to plain memory accesses on uncached peripheral space; on
// hosted builds an optional write hook lets test harnesses observe every
// register store.
package volatile

import "unsafe"

// WriteFunc observes a single register store. addr is the address of the
// backing word, bits its width (8, 16 or 32) and value the value written,
// zero-extended to 32 bits.
type WriteFunc func(addr unsafe.Pointer, bits int, value uint32)
