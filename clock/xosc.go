package clock

import "omibyte.io/samclk/chip"

// XoscToken proves the external multipurpose oscillator is unconfigured.
type XoscToken struct {
	sysctrl *chip.PeripheralSYSCTRL
}

// Xosc is the disabled external multipurpose oscillator, driven either by a
// crystal between XIN and XOUT or by an external clock on XIN.
type Xosc struct {
	tok      XoscToken
	freq     Hertz
	crystal  bool
	gain     chip.SYSCTRL_XOSC_REG_GAIN
	autoGain bool
	ampgc    bool
	startup  uint8
	runstdby bool
	ondemand bool
}

// NewXosc configures the oscillator for an external clock signal of the given
// frequency on XIN.
func NewXosc(tok XoscToken, freq Hertz) *Xosc {
	return &Xosc{tok: tok, freq: freq, autoGain: true}
}

// NewXoscCrystal configures the oscillator for a crystal of the given
// frequency. The gain stage defaults to the lowest setting covering the
// crystal frequency.
func NewXoscCrystal(tok XoscToken, freq Hertz) *Xosc {
	return &Xosc{tok: tok, freq: freq, crystal: true, autoGain: true}
}

// WithGain overrides the automatic gain selection.
func (x *Xosc) WithGain(gain chip.SYSCTRL_XOSC_REG_GAIN) *Xosc {
	x.gain = gain
	x.autoGain = false
	return x
}

// WithAmplitudeGainControl lets the oscillator regulate its own amplitude,
// trading startup time for power.
func (x *Xosc) WithAmplitudeGainControl(enabled bool) *Xosc {
	x.ampgc = enabled
	return x
}

// WithStartupDelay sets the 4-bit startup counter. The ready flag is held off
// for 2^cycles source clock cycles after enabling.
func (x *Xosc) WithStartupDelay(cycles uint8) *Xosc {
	x.startup = cycles
	return x
}

func (x *Xosc) WithRunStandby(enabled bool) *Xosc {
	x.runstdby = enabled
	return x
}

func (x *Xosc) WithOnDemand(enabled bool) *Xosc {
	x.ondemand = enabled
	return x
}

func (x *Xosc) Freq() Hertz { return x.freq }

// Enable validates the configuration and turns the oscillator on. The caller
// is responsible for waiting on readiness before routing the output anywhere.
func (x *Xosc) Enable() (*EnabledXosc, error) {
	if x.freq < 400*Kilohertz || x.freq > 32*Megahertz {
		return nil, ErrBadConfig
	}
	if x.startup > 0xF {
		return nil, ErrBadConfig
	}

	gain := x.gain
	if x.autoGain {
		gain = gainFor(x.freq)
	}

	reg := &x.tok.sysctrl.XOSC
	reg.SetXTALEN(x.crystal)
	reg.SetGAIN(gain)
	reg.SetAMPGC(x.ampgc)
	reg.SetSTARTUP(x.startup)
	reg.SetRUNSTDBY(x.runstdby)
	reg.SetONDEMAND(x.ondemand)
	reg.SetENABLE(true)

	return &EnabledXosc{x: x}, nil
}

func gainFor(freq Hertz) chip.SYSCTRL_XOSC_REG_GAIN {
	switch {
	case freq <= 2*Megahertz:
		return chip.SYSCTRL_XOSC_REG_GAIN_2MHZ
	case freq <= 4*Megahertz:
		return chip.SYSCTRL_XOSC_REG_GAIN_4MHZ
	case freq <= 8*Megahertz:
		return chip.SYSCTRL_XOSC_REG_GAIN_8MHZ
	case freq <= 16*Megahertz:
		return chip.SYSCTRL_XOSC_REG_GAIN_16MHZ
	default:
		return chip.SYSCTRL_XOSC_REG_GAIN_30MHZ
	}
}

// EnabledXosc is the running external oscillator.
type EnabledXosc struct {
	x *Xosc
	users
}

func (e *EnabledXosc) Freq() Hertz { return e.x.freq }

// Ready reports whether the oscillator has finished its startup delay.
func (e *EnabledXosc) Ready() bool {
	return e.x.tok.sysctrl.PCLKSR.GetXOSCRDY()
}

// WaitReady busy-waits until the oscillator output is stable.
func (e *EnabledXosc) WaitReady() {
	for !e.Ready() {
	}
}

// Disable turns the oscillator off and returns the handle for
// reconfiguration. Fails while any consumer is still bound to the output.
func (e *EnabledXosc) Disable() (*Xosc, error) {
	if e.Users() > 0 {
		return nil, ErrInUse
	}
	e.x.tok.sysctrl.XOSC.SetENABLE(false)
	return e.x, nil
}

func (e *EnabledXosc) gclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_XOSC
}

func (e *EnabledXosc) counter() *users { return &e.users }
