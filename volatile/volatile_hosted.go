//go:build !baremetal

package volatile

import "unsafe"

var writeHook WriteFunc

// SetWriteHook installs f as the observer for all stores and returns a
// function restoring the previous hook. Hosted builds only; the clock model
// is single threaded, so no locking is done.
func SetWriteHook(f WriteFunc) (restore func()) {
	prev := writeHook
	writeHook = f
	return func() { writeHook = prev }
}

func LoadUint8(addr *uint8) uint8 { return *addr }

func LoadUint16(addr *uint16) uint16 { return *addr }

func LoadUint32(addr *uint32) uint32 { return *addr }

func StoreUint8(addr *uint8, value uint8) {
	if writeHook != nil {
		writeHook(unsafe.Pointer(addr), 8, uint32(value))
	}
	*addr = value
}

func StoreUint16(addr *uint16, value uint16) {
	if writeHook != nil {
		writeHook(unsafe.Pointer(addr), 16, uint32(value))
	}
	*addr = value
}

func StoreUint32(addr *uint32, value uint32) {
	if writeHook != nil {
		writeHook(unsafe.Pointer(addr), 32, value)
	}
	*addr = value
}
