package clock

import "omibyte.io/samclk/chip"

// GclkSource is implemented by every enabled clock that can drive a generic
// clock generator.
type GclkSource interface {
	Freq() Hertz
	gclkSrc() chip.GCLK_GENCTRL_REG_SRC
	counter() *users
}

// GclkNum is a generator index, 0 through 8.
type GclkNum uint8

// GclkToken proves a generic clock generator is unconfigured.
type GclkToken struct {
	id   GclkNum
	gclk *chip.PeripheralGCLK
}

func (t GclkToken) ID() GclkNum { return t.id }

// Gclk is a disabled generic clock generator bound to a source.
type Gclk struct {
	tok      GclkToken
	src      GclkSource
	div      uint32
	divsel   bool
	idc      bool
	runstdby bool
}

// NewGclk binds a generator to a source. The source's usage counter is
// incremented by Enable, not here, so an abandoned handle costs nothing.
func NewGclk(tok GclkToken, src GclkSource) *Gclk {
	return &Gclk{tok: tok, src: src}
}

// WithDiv sets a plain divider. Zero and one both mean an undivided output.
func (g *Gclk) WithDiv(div uint16) *Gclk {
	g.div = uint32(div)
	g.divsel = false
	return g
}

// WithDivPow2 divides the source by 2^(exp+1).
func (g *Gclk) WithDivPow2(exp uint8) *Gclk {
	g.div = uint32(exp)
	g.divsel = true
	return g
}

// WithImprovedDutyCycle forces a 50/50 duty cycle for odd division ratios.
func (g *Gclk) WithImprovedDutyCycle(enabled bool) *Gclk {
	g.idc = enabled
	return g
}

func (g *Gclk) WithRunStandby(enabled bool) *Gclk {
	g.runstdby = enabled
	return g
}

func (g *Gclk) Freq() Hertz {
	// A pow-2 exponent of 31 or more divides by at least 2^32, past any
	// representable source frequency, and would overflow the shift below.
	if g.divsel && g.div >= 31 {
		return 0
	}
	return g.src.Freq() / Hertz(effectiveDiv(g.div, g.divsel))
}

func effectiveDiv(div uint32, divsel bool) uint32 {
	if divsel {
		return 1 << (div + 1)
	}
	if div == 0 {
		return 1
	}
	return div
}

// Enable validates the divider against the generator's field width, claims
// the source and switches the generator on. The divider and the control word
// are each written in a single store carrying the generator ID.
func (g *Gclk) Enable() (*EnabledGclk, error) {
	if g.div >= 1<<gclkDivWidth[g.tok.id] {
		return nil, ErrBadConfig
	}
	if src, ok := g.src.(*EnabledGclk); ok {
		// Only generator 1 feeds other generators, and never itself.
		if src.g.tok.id != 1 || g.tok.id == 1 {
			return nil, ErrBadConfig
		}
	}

	g.src.counter().use()
	g.write(true)
	return &EnabledGclk{g: g}, nil
}

func (g *Gclk) write(genen bool) {
	gendiv := chip.GCLK_GENDIV_REG(uint32(g.tok.id) | g.div<<chip.GCLK_GENDIV_REG_DIVPos)
	g.tok.gclk.GENDIV.Store(gendiv)

	genctrl := chip.GCLK_GENCTRL_REG(uint32(g.tok.id) |
		uint32(g.src.gclkSrc())<<chip.GCLK_GENCTRL_REG_SRCPos)
	if genen {
		genctrl |= 1 << chip.GCLK_GENCTRL_REG_GENENPos
	}
	if g.idc {
		genctrl |= 1 << chip.GCLK_GENCTRL_REG_IDCPos
	}
	if g.divsel {
		genctrl |= 1 << chip.GCLK_GENCTRL_REG_DIVSELPos
	}
	if g.runstdby {
		genctrl |= 1 << chip.GCLK_GENCTRL_REG_RUNSTDBYPos
	}
	g.tok.gclk.GENCTRL.Store(genctrl)

	for g.tok.gclk.STATUS.GetSYNCBUSY() {
	}
}

// EnabledGclk is a running generic clock generator.
type EnabledGclk struct {
	g *Gclk
	users
}

func (e *EnabledGclk) ID() GclkNum { return e.g.tok.id }

func (e *EnabledGclk) Freq() Hertz { return e.g.Freq() }

// Swap rebinds the running generator to a new source without an intermediate
// off state. The old source loses a user, the new one gains one.
func (e *EnabledGclk) Swap(src GclkSource) error {
	if gen, ok := src.(*EnabledGclk); ok {
		if gen.g.tok.id != 1 || e.g.tok.id == 1 {
			return ErrBadConfig
		}
	}
	old := e.g.src
	e.g.src = src
	src.counter().use()
	old.counter().unuse()
	e.g.write(true)
	return nil
}

// SetDiv changes the divider of the running generator.
func (e *EnabledGclk) SetDiv(div uint16) error {
	if uint32(div) >= 1<<gclkDivWidth[e.g.tok.id] {
		return ErrBadConfig
	}
	e.g.div = uint32(div)
	e.g.divsel = false
	e.g.write(true)
	return nil
}

// Disable switches the generator off and releases its source. Generator 0
// clocks the CPU and can never be disabled.
func (e *EnabledGclk) Disable() (*Gclk, error) {
	if e.g.tok.id == 0 {
		return nil, ErrAlwaysOn
	}
	if e.Users() > 0 {
		return nil, ErrInUse
	}
	e.g.write(false)
	e.g.src.counter().unuse()
	return e.g, nil
}

// gclkSrc makes generator 1 usable as a source for the other generators.
// Enable and Swap reject any other generator in source position.
func (e *EnabledGclk) gclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_GCLKGEN1
}

func (e *EnabledGclk) counter() *users { return &e.users }
