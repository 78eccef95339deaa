package clock

import "omibyte.io/samclk/chip"

// Xosc32kFreq is the only frequency the 32 kHz external oscillator produces.
const Xosc32kFreq Hertz = 32_768

// Xosc32k1kFreq is the divided 1.024 kHz tap.
const Xosc32k1kFreq Hertz = 1_024

// Xosc32kToken proves the external 32 kHz oscillator is unconfigured.
type Xosc32kToken struct {
	sysctrl *chip.PeripheralSYSCTRL
}

// Xosc32k is the disabled external 32 kHz oscillator. Both the 32.768 kHz
// output and the 1.024 kHz tap are off until configured on.
type Xosc32k struct {
	tok      Xosc32kToken
	crystal  bool
	en32k    bool
	en1k     bool
	startup  uint8
	runstdby bool
	ondemand bool
	wrtlock  bool
}

// NewXosc32k configures the oscillator for an external 32.768 kHz clock
// signal on XIN32.
func NewXosc32k(tok Xosc32kToken) *Xosc32k {
	return &Xosc32k{tok: tok, en32k: true}
}

// NewXosc32kCrystal configures the oscillator for a 32.768 kHz crystal
// between XIN32 and XOUT32.
func NewXosc32kCrystal(tok Xosc32kToken) *Xosc32k {
	return &Xosc32k{tok: tok, crystal: true, en32k: true}
}

// With1kOutput also enables the 1.024 kHz tap.
func (x *Xosc32k) With1kOutput(enabled bool) *Xosc32k {
	x.en1k = enabled
	return x
}

// WithStartupDelay sets the 3-bit startup counter.
func (x *Xosc32k) WithStartupDelay(cycles uint8) *Xosc32k {
	x.startup = cycles
	return x
}

func (x *Xosc32k) WithRunStandby(enabled bool) *Xosc32k {
	x.runstdby = enabled
	return x
}

func (x *Xosc32k) WithOnDemand(enabled bool) *Xosc32k {
	x.ondemand = enabled
	return x
}

// WithWriteLock freezes the control register until the next reset once the
// oscillator is enabled.
func (x *Xosc32k) WithWriteLock(enabled bool) *Xosc32k {
	x.wrtlock = enabled
	return x
}

// Enable turns the oscillator on.
func (x *Xosc32k) Enable() (*EnabledXosc32k, error) {
	if x.startup > 0x7 {
		return nil, ErrBadConfig
	}

	reg := &x.tok.sysctrl.XOSC32K
	reg.SetXTALEN(x.crystal)
	reg.SetEN32K(x.en32k)
	reg.SetEN1K(x.en1k)
	reg.SetSTARTUP(x.startup)
	reg.SetRUNSTDBY(x.runstdby)
	reg.SetONDEMAND(x.ondemand)
	reg.SetENABLE(true)
	if x.wrtlock {
		reg.SetWRTLOCK(true)
	}

	return &EnabledXosc32k{x: x}, nil
}

// EnabledXosc32k is the running external 32 kHz oscillator.
type EnabledXosc32k struct {
	x *Xosc32k
	users
}

func (e *EnabledXosc32k) Freq() Hertz { return Xosc32kFreq }

// Freq1k returns the frequency of the 1.024 kHz tap, or zero when the tap is
// not enabled.
func (e *EnabledXosc32k) Freq1k() Hertz {
	if !e.x.en1k {
		return 0
	}
	return Xosc32k1kFreq
}

func (e *EnabledXosc32k) Ready() bool {
	return e.x.tok.sysctrl.PCLKSR.GetXOSC32KRDY()
}

func (e *EnabledXosc32k) WaitReady() {
	for !e.Ready() {
	}
}

// Disable turns the oscillator off. Fails while consumers remain or when the
// control register was write locked at enable time.
func (e *EnabledXosc32k) Disable() (*Xosc32k, error) {
	if e.x.wrtlock {
		return nil, ErrAlwaysOn
	}
	if e.Users() > 0 {
		return nil, ErrInUse
	}
	e.x.tok.sysctrl.XOSC32K.SetENABLE(false)
	return e.x, nil
}

func (e *EnabledXosc32k) gclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_XOSC32K
}

func (e *EnabledXosc32k) counter() *users { return &e.users }
