package clock

import "omibyte.io/samclk/chip"

// ApbBridge selects one of the three APB bridges.
type ApbBridge uint8

const (
	BridgeA ApbBridge = iota
	BridgeB
	BridgeC
)

// DynApbID locates a peripheral's gate: the bridge it sits behind and its bit
// in that bridge's mask register.
type DynApbID struct {
	Bridge ApbBridge
	Bit    uint8
}

// ApbID is implemented by the generated peripheral marker types that have an
// APB gate.
type ApbID interface {
	apbID() DynApbID
}

// ApbToken proves a peripheral's APB gate is closed.
type ApbToken[A ApbID] struct {
	pm *chip.PeripheralPM
}

// ApbClk proves a peripheral's APB gate is open, so its registers can be
// accessed without a bus fault.
type ApbClk[A ApbID] struct {
	pm *chip.PeripheralPM
}

type apbMaskReg interface {
	Get() uint32
	EnableMask(uint32)
	DisableMask(uint32)
}

func apbMask(pm *chip.PeripheralPM, bridge ApbBridge) apbMaskReg {
	switch bridge {
	case BridgeA:
		return &pm.APBAMASK
	case BridgeB:
		return &pm.APBBMASK
	default:
		return &pm.APBCMASK
	}
}

// EnableApb opens a peripheral's bus gate with one read-modify-write of the
// owning bridge's mask register.
func EnableApb[A ApbID](tok ApbToken[A]) ApbClk[A] {
	var id A
	apbMask(tok.pm, id.apbID().Bridge).EnableMask(1 << id.apbID().Bit)
	return ApbClk[A]{pm: tok.pm}
}

// DisableApb closes the gate again and returns the token.
func DisableApb[A ApbID](clk ApbClk[A]) ApbToken[A] {
	var id A
	apbMask(clk.pm, id.apbID().Bridge).DisableMask(1 << id.apbID().Bit)
	return ApbToken[A]{pm: clk.pm}
}
