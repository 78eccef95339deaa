package clock

import "omibyte.io/samclk/chip"

// DynAhbID is a bit position in the AHBMASK register.
type DynAhbID uint8

// AhbID is implemented by the generated marker types of peripherals on the
// AHB matrix.
type AhbID interface {
	ahbID() DynAhbID
}

// AhbToken proves a peripheral's AHB gate is closed.
type AhbToken[A AhbID] struct {
	pm *chip.PeripheralPM
}

// AhbClk proves a peripheral's AHB gate is open. All gates are open at
// power-on reset, so Reset hands out AhbClks rather than tokens.
type AhbClk[A AhbID] struct {
	pm *chip.PeripheralPM
}

// EnableAhb opens a peripheral's AHB gate.
func EnableAhb[A AhbID](tok AhbToken[A]) AhbClk[A] {
	var id A
	tok.pm.AHBMASK.EnableMask(1 << id.ahbID())
	return AhbClk[A]{pm: tok.pm}
}

// DisableAhb closes the gate again and returns the token.
func DisableAhb[A AhbID](clk AhbClk[A]) AhbToken[A] {
	var id A
	clk.pm.AHBMASK.DisableMask(1 << id.ahbID())
	return AhbToken[A]{pm: clk.pm}
}
