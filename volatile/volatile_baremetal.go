//go:build baremetal

package volatile

// The peripheral address space is strongly ordered on Cortex-M0+, so plain
// accesses suffice as long as the compiler does not elide or reorder them.
// Keep these in their own tiny functions; the //go:noinline pragma is the
// portable way to defeat dead-store elimination without compiler intrinsics.

//go:noinline
func LoadUint8(addr *uint8) uint8 { return *addr }

//go:noinline
func LoadUint16(addr *uint16) uint16 { return *addr }

//go:noinline
func LoadUint32(addr *uint32) uint32 { return *addr }

//go:noinline
func StoreUint8(addr *uint8, value uint8) { *addr = value }

//go:noinline
func StoreUint16(addr *uint16, value uint16) { *addr = value }

//go:noinline
func StoreUint32(addr *uint32, value uint32) { *addr = value }
