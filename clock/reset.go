package clock

import "omibyte.io/samclk/chip"

// Pac guards the raw register blocks behind an explicit escape hatch. The
// clock API is built on the assumption that nothing else touches these
// registers; Steal exists for the cases it does not cover.
type Pac struct {
	p chip.Peripherals
}

// Steal hands back the raw register blocks. Configuring the hardware through
// them can invalidate frequencies and usage counts the clock types rely on.
func (p Pac) Steal() chip.Peripherals {
	return p.p
}

// Buses holds the AHB and APB gates open at power-on reset.
type Buses struct {
	Ahb AhbClks
	Apb ApbClks
}

// Clocks holds every clock already running at power-on reset: the main
// generator at 8 MHz from OSC8M, the ultra low power oscillator feeding
// generator 2, and the watchdog channel clock running from generator 2.
type Clocks struct {
	Pac Pac

	// Osc8m runs at 8 MHz and drives Gclk0.
	Osc8m *EnabledOsc8m
	// Gclk0 is the main clock generator. It can be reconfigured but never
	// disabled.
	Gclk0 *EnabledGclk
	// OscUlp32k can never be disabled and drives Gclk2.
	OscUlp32k *OscUlp32k
	// Gclk2 runs at 32.768 kHz and drives the watchdog channel clock.
	Gclk2 *EnabledGclk
	// PclkWdt is the watchdog's channel clock.
	PclkWdt *Pclk[WdtId]
}

// GclkTokens holds the generators not running at power-on reset.
type GclkTokens struct {
	Gclk1 GclkToken
	Gclk3 GclkToken
	Gclk4 GclkToken
	Gclk5 GclkToken
	Gclk6 GclkToken
	Gclk7 GclkToken
	Gclk8 GclkToken
}

// Tokens holds one token for every clock not running at power-on reset.
type Tokens struct {
	Apbs    ApbTokens
	Dfll    DfllToken
	Dpll    DpllToken
	Gclks   GclkTokens
	Pclks   PclkTokens
	Xosc    XoscToken
	Xosc32k Xosc32kToken
	Osc32k  Osc32kToken
}

// Reset consumes the register blocks and returns the clock tree in its
// power-on reset state: the bus gates, the already enabled clocks with their
// usage counts, and the tokens for everything else. The blocks can only be
// obtained once from chip.Take, which makes a second Reset on the same
// hardware impossible without going through Pac.Steal.
func Reset(p chip.Peripherals) (Buses, Clocks, Tokens) {
	buses := Buses{
		Ahb: makeAhbClks(p.PM),
		Apb: makeApbClks(p.PM),
	}

	// These constructions mirror the hardware reset state instead of driving
	// it, so no register is written here.
	osc8m := &EnabledOsc8m{o: NewOsc8m(Osc8mToken{sysctrl: p.SYSCTRL})}
	gclk0 := &EnabledGclk{g: NewGclk(GclkToken{id: 0, gclk: p.GCLK}, osc8m)}
	osc8m.use()

	osculp := &OscUlp32k{sysctrl: p.SYSCTRL}
	gclk2 := &EnabledGclk{g: NewGclk(GclkToken{id: 2, gclk: p.GCLK}, osculp)}
	osculp.use()

	wdt := &Pclk[WdtId]{
		tok:  PclkToken[WdtId]{gclk: p.GCLK},
		src:  gclk2,
		freq: gclk2.Freq(),
	}
	gclk2.use()

	clocks := Clocks{
		Pac:       Pac{p: p},
		Osc8m:     osc8m,
		Gclk0:     gclk0,
		OscUlp32k: osculp,
		Gclk2:     gclk2,
		PclkWdt:   wdt,
	}

	tokens := Tokens{
		Apbs: makeApbTokens(p.PM),
		Dfll: DfllToken{sysctrl: p.SYSCTRL},
		Dpll: DpllToken{sysctrl: p.SYSCTRL},
		Gclks: GclkTokens{
			Gclk1: GclkToken{id: 1, gclk: p.GCLK},
			Gclk3: GclkToken{id: 3, gclk: p.GCLK},
			Gclk4: GclkToken{id: 4, gclk: p.GCLK},
			Gclk5: GclkToken{id: 5, gclk: p.GCLK},
			Gclk6: GclkToken{id: 6, gclk: p.GCLK},
			Gclk7: GclkToken{id: 7, gclk: p.GCLK},
			Gclk8: GclkToken{id: 8, gclk: p.GCLK},
		},
		Pclks:   makePclkTokens(p.GCLK),
		Xosc:    XoscToken{sysctrl: p.SYSCTRL},
		Xosc32k: Xosc32kToken{sysctrl: p.SYSCTRL},
		Osc32k:  Osc32kToken{sysctrl: p.SYSCTRL},
	}

	return buses, clocks, tokens
}
