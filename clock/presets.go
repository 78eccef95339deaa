package clock

// dfllClosedLoopMul multiplies a 32.768 kHz reference up to just under
// 48 MHz.
const dfllClosedLoopMul = uint16(48_000_000 / 32_768)

// Internal48MHz is the clock tree produced by Preset48MHzInternal.
type Internal48MHz struct {
	// Gclk0 runs at 48 MHz from the DFLL.
	Gclk0 *EnabledGclk
	// Gclk1 runs at 32.768 kHz from the internal oscillator and feeds the
	// DFLL reference channel.
	Gclk1  *EnabledGclk
	Osc32k *EnabledOsc32k
	Dfll   *EnabledDfll
	// Osc8m no longer has users and may be disabled to save power.
	Osc8m *EnabledOsc8m
}

// Preset48MHzInternal brings the main clock to 48 MHz without external
// components: the internal 32 kHz oscillator drives generator 1, generator 1
// drives the DFLL reference channel, the DFLL multiplies it up in closed loop
// mode and the main generator is swapped over from OSC8M. None of the steps
// block on readiness; callers who need a settled output wait on the returned
// DFLL.
func Preset48MHzInternal(clocks *Clocks, tokens *Tokens) (*Internal48MHz, error) {
	osc32k, err := NewOsc32k(tokens.Osc32k).Enable()
	if err != nil {
		return nil, err
	}

	gclk1, err := NewGclk(tokens.Gclks.Gclk1, osc32k).Enable()
	if err != nil {
		return nil, err
	}

	pclkDfll := EnablePclk(tokens.Pclks.Dfll, gclk1)
	dfll, err := NewDfllClosedLoop(tokens.Dfll, pclkDfll, dfllClosedLoopMul).
		WithMaxSteps(10, 10).
		Enable()
	if err != nil {
		return nil, err
	}

	if err := clocks.Gclk0.Swap(dfll); err != nil {
		return nil, err
	}

	return &Internal48MHz{
		Gclk0:  clocks.Gclk0,
		Gclk1:  gclk1,
		Osc32k: osc32k,
		Dfll:   dfll,
		Osc8m:  clocks.Osc8m,
	}, nil
}

// External48MHz is the clock tree produced by Preset48MHzExternal.
type External48MHz struct {
	Gclk0   *EnabledGclk
	Gclk1   *EnabledGclk
	Xosc32k *EnabledXosc32k
	Dfll    *EnabledDfll
	Osc8m   *EnabledOsc8m
}

// Preset48MHzExternal is Preset48MHzInternal with the reference taken from a
// 32.768 kHz crystal for much better frequency accuracy.
func Preset48MHzExternal(clocks *Clocks, tokens *Tokens) (*External48MHz, error) {
	xosc32k, err := NewXosc32kCrystal(tokens.Xosc32k).Enable()
	if err != nil {
		return nil, err
	}

	gclk1, err := NewGclk(tokens.Gclks.Gclk1, xosc32k).Enable()
	if err != nil {
		return nil, err
	}

	pclkDfll := EnablePclk(tokens.Pclks.Dfll, gclk1)
	dfll, err := NewDfllClosedLoop(tokens.Dfll, pclkDfll, dfllClosedLoopMul).
		WithMaxSteps(10, 10).
		Enable()
	if err != nil {
		return nil, err
	}

	if err := clocks.Gclk0.Swap(dfll); err != nil {
		return nil, err
	}

	return &External48MHz{
		Gclk0:   clocks.Gclk0,
		Gclk1:   gclk1,
		Xosc32k: xosc32k,
		Dfll:    dfll,
		Osc8m:   clocks.Osc8m,
	}, nil
}
