package clock

import "omibyte.io/samclk/chip"

// Osc8mBaseFreq is the undivided output of the internal 8 MHz oscillator.
const Osc8mBaseFreq Hertz = 8 * Megahertz

// Osc8mToken proves the internal 8 MHz oscillator is unconfigured.
type Osc8mToken struct {
	sysctrl *chip.PeripheralSYSCTRL
}

// Osc8m is the disabled internal 8 MHz oscillator. The oscillator runs at
// power-on reset; this handle only exists after the reset instance has been
// disabled.
type Osc8m struct {
	tok      Osc8mToken
	presc    chip.SYSCTRL_OSC8M_REG_PRESC
	runstdby bool
	ondemand bool
}

func NewOsc8m(tok Osc8mToken) *Osc8m {
	return &Osc8m{tok: tok}
}

// WithPrescaler divides the 8 MHz output by 1, 2, 4 or 8.
func (o *Osc8m) WithPrescaler(presc chip.SYSCTRL_OSC8M_REG_PRESC) *Osc8m {
	o.presc = presc
	return o
}

func (o *Osc8m) WithRunStandby(enabled bool) *Osc8m {
	o.runstdby = enabled
	return o
}

func (o *Osc8m) WithOnDemand(enabled bool) *Osc8m {
	o.ondemand = enabled
	return o
}

func (o *Osc8m) Freq() Hertz {
	return Osc8mBaseFreq >> o.presc
}

// Enable turns the oscillator on.
func (o *Osc8m) Enable() (*EnabledOsc8m, error) {
	if o.presc > chip.SYSCTRL_OSC8M_REG_PRESC_DIV8 {
		return nil, ErrBadConfig
	}

	reg := &o.tok.sysctrl.OSC8M
	reg.SetPRESC(o.presc)
	reg.SetRUNSTDBY(o.runstdby)
	reg.SetONDEMAND(o.ondemand)
	reg.SetENABLE(true)

	return &EnabledOsc8m{o: o}, nil
}

// EnabledOsc8m is the running internal 8 MHz oscillator.
type EnabledOsc8m struct {
	o *Osc8m
	users
}

func (e *EnabledOsc8m) Freq() Hertz { return e.o.Freq() }

func (e *EnabledOsc8m) Ready() bool {
	return e.o.tok.sysctrl.PCLKSR.GetOSC8MRDY()
}

func (e *EnabledOsc8m) WaitReady() {
	for !e.Ready() {
	}
}

func (e *EnabledOsc8m) Disable() (*Osc8m, error) {
	if e.Users() > 0 {
		return nil, ErrInUse
	}
	e.o.tok.sysctrl.OSC8M.SetENABLE(false)
	return e.o, nil
}

func (e *EnabledOsc8m) gclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_OSC8M
}

func (e *EnabledOsc8m) counter() *users { return &e.users }
