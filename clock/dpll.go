package clock

import "omibyte.io/samclk/chip"

// DPLL operating windows. The reference, after predivision, must land in the
// input window and the multiplied output in the output window, or Enable
// refuses to touch the hardware.
const (
	DpllMinInputFreq  Hertz = 32 * Kilohertz
	DpllMaxInputFreq  Hertz = 3_200 * Kilohertz
	DpllMinOutputFreq Hertz = 48 * Megahertz
	DpllMaxOutputFreq Hertz = 96 * Megahertz
)

// DpllToken proves the digital PLL is unconfigured.
type DpllToken struct {
	sysctrl *chip.PeripheralSYSCTRL
}

// Dpll is the disabled digital PLL bound to a reference clock. The reference
// is claimed on construction and released by Free, not by Disable, so a
// disabled Dpll can be re-enabled without renegotiating its source.
type Dpll struct {
	tok       DpllToken
	refclk    chip.SYSCTRL_DPLLCTRLB_REG_REFCLK
	refFreq   Hertz
	rawPrediv uint16
	srcUsers  *users
	mult      uint16
	frac      uint8
	lbypass   bool
	wuf       bool
	runstdby  bool
	ondemand  bool
	filter    chip.SYSCTRL_DPLLCTRLB_REG_FILTER
	ltime     chip.SYSCTRL_DPLLCTRLB_REG_LTIME
}

// NewDpllFromXosc references the PLL to the external oscillator through the
// clock divider. The effective predivider is 2*(rawPrediv+1).
func NewDpllFromXosc(tok DpllToken, src *EnabledXosc, rawPrediv uint16) *Dpll {
	src.use()
	return &Dpll{
		tok:       tok,
		refclk:    chip.SYSCTRL_DPLLCTRLB_REG_REFCLK_REF1,
		refFreq:   src.Freq(),
		rawPrediv: rawPrediv,
		srcUsers:  src.counter(),
		mult:      1,
	}
}

// NewDpllFromXosc32k references the PLL to the external 32 kHz oscillator.
func NewDpllFromXosc32k(tok DpllToken, src *EnabledXosc32k) *Dpll {
	src.use()
	return &Dpll{
		tok:      tok,
		refclk:   chip.SYSCTRL_DPLLCTRLB_REG_REFCLK_REF0,
		refFreq:  src.Freq(),
		srcUsers: src.counter(),
		mult:     1,
	}
}

// NewDpllFromPclk references the PLL to its peripheral channel clock, and
// through it to any generic clock generator. The channel is claimed so its
// chain cannot be torn down under the PLL.
func NewDpllFromPclk(tok DpllToken, src *Pclk[DpllId]) *Dpll {
	src.use()
	return &Dpll{
		tok:      tok,
		refclk:   chip.SYSCTRL_DPLLCTRLB_REG_REFCLK_GCLK,
		refFreq:  src.Freq(),
		srcUsers: &src.users,
		mult:     1,
	}
}

// WithLoopDiv sets the feedback loop multiplier. The output frequency is the
// effective input times mult + frac/32.
func (d *Dpll) WithLoopDiv(mult uint16, frac uint8) *Dpll {
	d.mult = mult
	d.frac = frac
	return d
}

// WithLockBypass makes the output run even before the loop has locked.
func (d *Dpll) WithLockBypass(enabled bool) *Dpll {
	d.lbypass = enabled
	return d
}

// WithWakeUpFast releases the output on wake-up without waiting for lock.
func (d *Dpll) WithWakeUpFast(enabled bool) *Dpll {
	d.wuf = enabled
	return d
}

func (d *Dpll) WithRunStandby(enabled bool) *Dpll {
	d.runstdby = enabled
	return d
}

func (d *Dpll) WithOnDemand(enabled bool) *Dpll {
	d.ondemand = enabled
	return d
}

func (d *Dpll) WithFilter(filter chip.SYSCTRL_DPLLCTRLB_REG_FILTER) *Dpll {
	d.filter = filter
	return d
}

func (d *Dpll) WithLockTime(ltime chip.SYSCTRL_DPLLCTRLB_REG_LTIME) *Dpll {
	d.ltime = ltime
	return d
}

// Free releases the reference clock and returns the token.
func (d *Dpll) Free() DpllToken {
	if d.srcUsers != nil {
		d.srcUsers.unuse()
		d.srcUsers = nil
	}
	return d.tok
}

// predivider is the division applied to the reference before the phase
// comparator. Only the XOSC path has a divider; the other references feed the
// comparator directly.
func (d *Dpll) predivider() uint32 {
	if d.refclk == chip.SYSCTRL_DPLLCTRLB_REG_REFCLK_REF1 {
		return 2 * (uint32(d.rawPrediv) + 1)
	}
	return 1
}

func (d *Dpll) effectiveInput() Hertz {
	return d.refFreq / Hertz(d.predivider())
}

// Freq is the output frequency the stored configuration produces. The
// fractional part of the multiplier is kept in the computation, so a 2 MHz
// reference with mult 48 and frac 16 reports 97 MHz, not 96.
func (d *Dpll) Freq() Hertz {
	eff := d.effectiveInput()
	return eff*Hertz(d.mult) + eff*Hertz(d.frac)/32
}

func (d *Dpll) validate() error {
	if d.mult < 1 || d.mult > 4096 || d.frac > 31 {
		return ErrBadConfig
	}
	if d.predivider() > 2048 {
		return ErrBadConfig
	}
	if eff := d.effectiveInput(); eff < DpllMinInputFreq || eff > DpllMaxInputFreq {
		return ErrBadConfig
	}
	if out := d.Freq(); out < DpllMinOutputFreq || out > DpllMaxOutputFreq {
		return ErrBadConfig
	}
	return nil
}

// Enable validates the configuration and brings the PLL up: reference
// selection and predivider first, then the loop divider, the lock behavior
// flags, the power flags and finally the enable bit. On a validation failure
// the handle is returned to the caller untouched and no register is written.
func (d *Dpll) Enable() (*EnabledDpll, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	ctrlb := &d.tok.sysctrl.DPLLCTRLB
	ctrlb.SetREFCLK(d.refclk)
	if d.refclk == chip.SYSCTRL_DPLLCTRLB_REG_REFCLK_REF1 {
		ctrlb.SetDIV(d.rawPrediv)
	}

	ratio := &d.tok.sysctrl.DPLLRATIO
	ratio.SetLDR(d.mult - 1)
	// The API fraction is in 32nds, the register field in 16ths.
	ratio.SetLDRFRAC(d.frac >> 1)

	ctrlb.SetLBYPASS(d.lbypass)
	ctrlb.SetWUF(d.wuf)
	ctrlb.SetFILTER(d.filter)
	ctrlb.SetLTIME(d.ltime)

	ctrla := &d.tok.sysctrl.DPLLCTRLA
	ctrla.SetONDEMAND(d.ondemand)
	ctrla.SetRUNSTDBY(d.runstdby)
	ctrla.SetENABLE(true)

	return &EnabledDpll{d: d}, nil
}

// EnabledDpll is the running digital PLL.
type EnabledDpll struct {
	d *Dpll
	users
}

func (e *EnabledDpll) Freq() Hertz { return e.d.Freq() }

// Ready reports whether the output clock is running. With lock bypass or
// wake-up fast the output can be ready before the loop is locked, so this is
// a separate question from Locked.
func (e *EnabledDpll) Ready() bool {
	return e.d.tok.sysctrl.DPLLSTATUS.GetCLKRDY()
}

// Locked reports whether the loop has locked onto the reference.
func (e *EnabledDpll) Locked() bool {
	return e.d.tok.sysctrl.DPLLSTATUS.GetLOCK()
}

func (e *EnabledDpll) WaitReady() {
	for !e.Ready() {
	}
}

func (e *EnabledDpll) WaitLocked() {
	for !e.Locked() {
	}
}

// Disable turns the PLL off. The reference stays claimed; use Free on the
// returned handle to release it.
func (e *EnabledDpll) Disable() (*Dpll, error) {
	if e.Users() > 0 {
		return nil, ErrInUse
	}
	e.d.tok.sysctrl.DPLLCTRLA.SetENABLE(false)
	return e.d, nil
}

func (e *EnabledDpll) gclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_DPLL96M
}

func (e *EnabledDpll) counter() *users { return &e.users }
