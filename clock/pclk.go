package clock

import "omibyte.io/samclk/chip"

// DynPclkID is a peripheral channel number, the CLKCTRL.ID value.
type DynPclkID uint8

// PclkID is implemented by the generated channel marker types. Each marker
// pins a Pclk to the one peripheral it feeds.
type PclkID interface {
	pclkID() DynPclkID
}

// PclkToken proves a peripheral channel clock is unconfigured.
type PclkToken[P PclkID] struct {
	gclk *chip.PeripheralGCLK
}

// Pclk is an enabled peripheral channel clock. Its frequency is captured from
// the generator at enable time; a later divider change on the generator does
// not propagate here. Consumers that reference the channel, like a DPLL or
// DFLL running in closed loop, count as users and block Disable.
type Pclk[P PclkID] struct {
	tok  PclkToken[P]
	src  *EnabledGclk
	freq Hertz
	users
}

// EnablePclk routes a generator to the channel and enables it. The channel
// ID, generator selection and enable bit go out in one store, so the channel
// never runs from a stale source. The generator gains a user.
func EnablePclk[P PclkID](tok PclkToken[P], src *EnabledGclk) *Pclk[P] {
	var id P
	tok.gclk.CLKCTRL.Store(chip.GCLK_CLKCTRL_REG(uint16(id.pclkID()) |
		uint16(src.ID())<<chip.GCLK_CLKCTRL_REG_GENPos |
		1<<chip.GCLK_CLKCTRL_REG_CLKENPos))
	src.use()
	return &Pclk[P]{tok: tok, src: src, freq: src.Freq()}
}

func (p *Pclk[P]) Freq() Hertz { return p.freq }

// Disable clears the channel enable bit, releases the generator and returns
// the token. Fails while a consumer still references the channel.
func (p *Pclk[P]) Disable() (PclkToken[P], error) {
	if p.Users() > 0 {
		return PclkToken[P]{}, ErrInUse
	}
	var id P
	p.tok.gclk.CLKCTRL.Store(chip.GCLK_CLKCTRL_REG(uint16(id.pclkID())))
	p.src.unuse()
	return p.tok, nil
}
