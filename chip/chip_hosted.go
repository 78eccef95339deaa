//go:build !baremetal

package chip

// Device is an in-memory stand-in for the SAM D21 peripheral address space.
// Register blocks live inside the struct instead of at their fixed bus
// addresses, so any number of independent devices can exist in one test
// process.
type Device struct {
	SYSCTRL PeripheralSYSCTRL
	GCLK    PeripheralGCLK
	PM      PeripheralPM
	WDT     PeripheralWDT

	taken bool
}

// NewSim returns a simulated device in its power-on reset state: the internal
// 8 MHz oscillator running and ready, the ultra low power oscillator always
// on, and the PM bus masks at their reset values.
func NewSim() *Device {
	d := &Device{}

	// OSC8M comes out of reset enabled, on demand, in the 8-11 MHz range.
	d.SYSCTRL.OSC8M = SYSCTRL_OSC8M_REG(1<<1 | 1<<7 | uint32(SYSCTRL_OSC8M_REG_FRANGE_8TO11MHZ)<<30)
	// OSC8MRDY; DFLLRDY is also set out of reset so the DFLL accepts its
	// first configuration write.
	d.SYSCTRL.PCLKSR = SYSCTRL_PCLKSR_REG(1<<3 | 1<<4)

	d.PM.AHBMASK = PM_AHBMASK_REG(0x7F)
	d.PM.APBAMASK = PM_APBAMASK_REG(0x7F)
	d.PM.APBBMASK = PM_APBBMASK_REG(0x1F)
	d.PM.APBCMASK = PM_APBCMASK_REG(0x01)

	return d
}

// Take hands the device's register blocks over exactly once, mirroring the
// bare-metal Take. A second call on the same device panics.
func (d *Device) Take() Peripherals {
	if d.taken {
		panic("chip: peripherals already taken")
	}
	d.taken = true
	return Peripherals{
		SYSCTRL: &d.SYSCTRL,
		GCLK:    &d.GCLK,
		PM:      &d.PM,
		WDT:     &d.WDT,
	}
}

// Settle advances the simulated hardware to its steady state: every enabled
// oscillator reports ready and an enabled DPLL reports clock ready and lock.
// Status bits are assigned directly rather than stored through the volatile
// layer, so a write hook never sees them.
func (d *Device) Settle() {
	var pclksr SYSCTRL_PCLKSR_REG
	if d.SYSCTRL.XOSC&(1<<1) != 0 {
		pclksr |= 1 << 0 // XOSCRDY
	}
	if d.SYSCTRL.XOSC32K&(1<<1) != 0 {
		pclksr |= 1 << 1 // XOSC32KRDY
	}
	if d.SYSCTRL.OSC32K&(1<<1) != 0 {
		pclksr |= 1 << 2 // OSC32KRDY
	}
	if d.SYSCTRL.OSC8M&(1<<1) != 0 {
		pclksr |= 1 << 3 // OSC8MRDY
	}
	pclksr |= 1 << 4 // DFLLRDY, never busy in simulation
	if d.SYSCTRL.DFLLCTRL&(1<<1) != 0 && d.SYSCTRL.DFLLCTRL&(1<<2) != 0 {
		pclksr |= 1<<6 | 1<<7 // DFLLLCKF, DFLLLCKC
	}
	if d.SYSCTRL.DPLLCTRLA&(1<<1) != 0 {
		pclksr |= 1 << 15 // DPLLLCKR
		d.SYSCTRL.DPLLSTATUS = 1<<0 | 1<<1 | 1<<2 // LOCK, CLKRDY, ENABLE
	} else {
		d.SYSCTRL.DPLLSTATUS = 0
	}
	d.SYSCTRL.PCLKSR = pclksr
}
