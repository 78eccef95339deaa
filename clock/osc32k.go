package clock

import "omibyte.io/samclk/chip"

// Osc32kFreq is the nominal output of the internal 32 kHz oscillator.
const Osc32kFreq Hertz = 32_768

// Osc32k1kFreq is its divided 1.024 kHz tap.
const Osc32k1kFreq Hertz = 1_024

// Osc32kToken proves the internal 32 kHz oscillator is unconfigured.
type Osc32kToken struct {
	sysctrl *chip.PeripheralSYSCTRL
}

// Osc32k is the disabled internal 32 kHz oscillator.
type Osc32k struct {
	tok      Osc32kToken
	en32k    bool
	en1k     bool
	calib    uint8
	hasCalib bool
	startup  uint8
	runstdby bool
	ondemand bool
	wrtlock  bool
}

func NewOsc32k(tok Osc32kToken) *Osc32k {
	return &Osc32k{tok: tok, en32k: true}
}

// With1kOutput also enables the 1.024 kHz tap.
func (o *Osc32k) With1kOutput(enabled bool) *Osc32k {
	o.en1k = enabled
	return o
}

// WithCalibration overrides the 7-bit factory calibration value loaded by the
// startup code.
func (o *Osc32k) WithCalibration(calib uint8) *Osc32k {
	o.calib = calib
	o.hasCalib = true
	return o
}

// WithStartupDelay sets the 3-bit startup counter.
func (o *Osc32k) WithStartupDelay(cycles uint8) *Osc32k {
	o.startup = cycles
	return o
}

func (o *Osc32k) WithRunStandby(enabled bool) *Osc32k {
	o.runstdby = enabled
	return o
}

func (o *Osc32k) WithOnDemand(enabled bool) *Osc32k {
	o.ondemand = enabled
	return o
}

// WithWriteLock freezes the control register until the next reset once the
// oscillator is enabled.
func (o *Osc32k) WithWriteLock(enabled bool) *Osc32k {
	o.wrtlock = enabled
	return o
}

// Enable turns the oscillator on.
func (o *Osc32k) Enable() (*EnabledOsc32k, error) {
	if o.startup > 0x7 || (o.hasCalib && o.calib > 0x7F) {
		return nil, ErrBadConfig
	}

	reg := &o.tok.sysctrl.OSC32K
	if o.hasCalib {
		reg.SetCALIB(o.calib)
	}
	reg.SetEN32K(o.en32k)
	reg.SetEN1K(o.en1k)
	reg.SetSTARTUP(o.startup)
	reg.SetRUNSTDBY(o.runstdby)
	reg.SetONDEMAND(o.ondemand)
	reg.SetENABLE(true)
	if o.wrtlock {
		reg.SetWRTLOCK(true)
	}

	return &EnabledOsc32k{o: o}, nil
}

// EnabledOsc32k is the running internal 32 kHz oscillator.
type EnabledOsc32k struct {
	o *Osc32k
	users
}

func (e *EnabledOsc32k) Freq() Hertz { return Osc32kFreq }

func (e *EnabledOsc32k) Freq1k() Hertz {
	if !e.o.en1k {
		return 0
	}
	return Osc32k1kFreq
}

func (e *EnabledOsc32k) Ready() bool {
	return e.o.tok.sysctrl.PCLKSR.GetOSC32KRDY()
}

func (e *EnabledOsc32k) WaitReady() {
	for !e.Ready() {
	}
}

func (e *EnabledOsc32k) Disable() (*Osc32k, error) {
	if e.o.wrtlock {
		return nil, ErrAlwaysOn
	}
	if e.Users() > 0 {
		return nil, ErrInUse
	}
	e.o.tok.sysctrl.OSC32K.SetENABLE(false)
	return e.o, nil
}

func (e *EnabledOsc32k) gclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_OSC32K
}

func (e *EnabledOsc32k) counter() *users { return &e.users }
