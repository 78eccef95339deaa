//go:build baremetal

package chip

import "unsafe"

var taken bool

// Take maps the peripheral register blocks at their fixed bus addresses and
// hands them over exactly once. A second call panics: two owners of the same
// clock hardware cannot both be right.
func Take() Peripherals {
	if taken {
		panic("chip: peripherals already taken")
	}
	taken = true
	return Peripherals{
		SYSCTRL: (*PeripheralSYSCTRL)(unsafe.Pointer(SYSCTRLBaseAddress)),
		GCLK:    (*PeripheralGCLK)(unsafe.Pointer(GCLKBaseAddress)),
		PM:      (*PeripheralPM)(unsafe.Pointer(PMBaseAddress)),
		WDT:     (*PeripheralWDT)(unsafe.Pointer(WDTBaseAddress)),
	}
}
