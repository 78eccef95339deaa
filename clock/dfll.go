package clock

import "omibyte.io/samclk/chip"

// DfllOpenLoopFreq is the nominal open loop output.
const DfllOpenLoopFreq Hertz = 48 * Megahertz

// Closed loop output window. The DFLL can only regulate around its 48 MHz
// center frequency.
const (
	DfllMinFreq Hertz = 47 * Megahertz
	DfllMaxFreq Hertz = 49 * Megahertz
)

// DfllToken proves the DFLL is unconfigured.
type DfllToken struct {
	sysctrl *chip.PeripheralSYSCTRL
}

// Dfll is the disabled digital frequency locked loop. In open loop mode it
// free-runs near 48 MHz from its calibration values; in closed loop mode it
// multiplies the reference supplied on its peripheral channel clock.
type Dfll struct {
	tok       DfllToken
	closed    bool
	refFreq   Hertz
	srcUsers  *users
	mul       uint16
	coarse    uint8
	fine      uint16
	hasCoarse bool
	hasFine   bool
	cstep     uint8
	fstep     uint16
	waitlock  bool
	stable    bool
	runstdby  bool
	ondemand  bool
}

// NewDfllOpenLoop configures the DFLL to free-run at its calibrated 48 MHz.
func NewDfllOpenLoop(tok DfllToken) *Dfll {
	return &Dfll{tok: tok}
}

// NewDfllClosedLoop configures the DFLL to lock its output to ref times mul.
// The reference channel is claimed until Free releases it.
func NewDfllClosedLoop(tok DfllToken, ref *Pclk[DfllId], mul uint16) *Dfll {
	ref.use()
	return &Dfll{
		tok:      tok,
		closed:   true,
		refFreq:  ref.Freq(),
		srcUsers: &ref.users,
		mul:      mul,
		cstep:    1,
		fstep:    1,
		waitlock: true,
	}
}

// WithCoarseCalibration seeds the 6-bit coarse tuner, typically from the NVM
// calibration row, to shorten the lock time.
func (d *Dfll) WithCoarseCalibration(coarse uint8) *Dfll {
	d.coarse = coarse
	d.hasCoarse = true
	return d
}

// WithFineCalibration seeds the 10-bit fine tuner.
func (d *Dfll) WithFineCalibration(fine uint16) *Dfll {
	d.fine = fine
	d.hasFine = true
	return d
}

// WithMaxSteps bounds the coarse and fine adjustments per reference cycle.
func (d *Dfll) WithMaxSteps(coarse uint8, fine uint16) *Dfll {
	d.cstep = coarse
	d.fstep = fine
	return d
}

// WithStableFine freezes the fine tuner once the loop has locked.
func (d *Dfll) WithStableFine(enabled bool) *Dfll {
	d.stable = enabled
	return d
}

func (d *Dfll) WithRunStandby(enabled bool) *Dfll {
	d.runstdby = enabled
	return d
}

func (d *Dfll) WithOnDemand(enabled bool) *Dfll {
	d.ondemand = enabled
	return d
}

// Free releases the reference channel, if any, and returns the token.
func (d *Dfll) Free() DfllToken {
	if d.srcUsers != nil {
		d.srcUsers.unuse()
		d.srcUsers = nil
	}
	return d.tok
}

func (d *Dfll) Freq() Hertz {
	if !d.closed {
		return DfllOpenLoopFreq
	}
	return d.refFreq * Hertz(d.mul)
}

// waitSync holds off until the DFLL accepts register writes. Writing any DFLL
// register while DFLLRDY is low can lock the bus, so every write below is
// preceded by this.
func (d *Dfll) waitSync() {
	for !d.tok.sysctrl.PCLKSR.GetDFLLRDY() {
	}
}

// Enable validates the configuration and brings the DFLL up. No register is
// written when validation fails.
func (d *Dfll) Enable() (*EnabledDfll, error) {
	if d.closed {
		if d.mul == 0 {
			return nil, ErrBadConfig
		}
		if out := d.Freq(); out < DfllMinFreq || out > DfllMaxFreq {
			return nil, ErrBadConfig
		}
	}
	if d.hasCoarse && d.coarse > 0x3F || d.hasFine && d.fine > 0x3FF {
		return nil, ErrBadConfig
	}

	ctrl := &d.tok.sysctrl.DFLLCTRL

	if d.closed {
		d.waitSync()
		mul := &d.tok.sysctrl.DFLLMUL
		mul.SetMUL(d.mul)
		mul.SetCSTEP(d.cstep)
		mul.SetFSTEP(d.fstep)
	}
	if d.hasCoarse || d.hasFine {
		d.waitSync()
		val := &d.tok.sysctrl.DFLLVAL
		if d.hasCoarse {
			val.SetCOARSE(d.coarse)
		}
		if d.hasFine {
			val.SetFINE(d.fine)
		}
	}

	d.waitSync()
	ctrl.SetMODE(d.closed)
	ctrl.SetWAITLOCK(d.closed && d.waitlock)
	ctrl.SetSTABLE(d.stable)
	ctrl.SetRUNSTDBY(d.runstdby)
	ctrl.SetONDEMAND(d.ondemand)
	d.waitSync()
	ctrl.SetENABLE(true)

	return &EnabledDfll{d: d}, nil
}

// EnabledDfll is the running DFLL.
type EnabledDfll struct {
	d *Dfll
	users
}

func (e *EnabledDfll) Freq() Hertz { return e.d.Freq() }

func (e *EnabledDfll) Ready() bool {
	return e.d.tok.sysctrl.PCLKSR.GetDFLLRDY()
}

// Locked reports whether both the coarse and fine loops have locked. Open
// loop operation has no lock to wait for and always reports true.
func (e *EnabledDfll) Locked() bool {
	if !e.d.closed {
		return true
	}
	pclksr := &e.d.tok.sysctrl.PCLKSR
	return pclksr.GetDFLLLCKC() && pclksr.GetDFLLLCKF()
}

func (e *EnabledDfll) WaitReady() {
	for !e.Ready() {
	}
}

func (e *EnabledDfll) WaitLocked() {
	for !e.Locked() {
	}
}

func (e *EnabledDfll) Disable() (*Dfll, error) {
	if e.Users() > 0 {
		return nil, ErrInUse
	}
	e.d.waitSync()
	e.d.tok.sysctrl.DFLLCTRL.SetENABLE(false)
	return e.d, nil
}

func (e *EnabledDfll) gclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_DFLL48M
}

func (e *EnabledDfll) counter() *users { return &e.users }
