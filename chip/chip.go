// Package chip provides the SAM D21 register blocks used by the clock layer:
// SYSCTRL (oscillators and PLLs), GCLK (generic clock generators and
// peripheral channels), PM (bus masks) and WDT. Register layouts match the
// datasheet register maps bit for bit; field accessors follow the style of
// csp-gen generated chip support packages.
//
// The peripheral singleton is obtained through Take, which can succeed only
// once per device. Hosted builds construct simulated devices with NewSim
// instead of mapping the fixed peripheral addresses.
package chip

// Peripherals is the set of register blocks the clock layer takes ownership
// of at boot. It can only be obtained from Take, so holding a Peripherals
// value is proof of exclusive access to the underlying registers.
type Peripherals struct {
	SYSCTRL *PeripheralSYSCTRL
	GCLK    *PeripheralGCLK
	PM      *PeripheralPM
	WDT     *PeripheralWDT
}

const (
	SYSCTRLBaseAddress uintptr = 0x40000800
	GCLKBaseAddress    uintptr = 0x40000C00
	PMBaseAddress      uintptr = 0x40000400
	WDTBaseAddress     uintptr = 0x40001000
)
