package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/samclk/chip"
	"omibyte.io/samclk/chip/chiptest"
	"omibyte.io/samclk/clock"
)

// pclk2MHz builds a 2 MHz DPLL reference channel from an external 2 MHz
// clock signal routed through generator 3.
func pclk2MHz(t *testing.T, tokens *clock.Tokens) *clock.Pclk[clock.DpllId] {
	t.Helper()
	xosc, err := clock.NewXosc(tokens.Xosc, 2*clock.Megahertz).Enable()
	require.NoError(t, err)
	gclk3, err := clock.NewGclk(tokens.Gclks.Gclk3, xosc).Enable()
	require.NoError(t, err)
	return clock.EnablePclk(tokens.Pclks.Dpll, gclk3)
}

func TestDpllFromPclkWindows(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())
	pclk := pclk2MHz(t, &tokens)

	// 2 MHz * 48 = 96 MHz sits exactly on the upper output bound.
	dpll, err := clock.NewDpllFromPclk(tokens.Dpll, pclk).WithLoopDiv(48, 0).Enable()
	require.NoError(t, err)
	assert.Equal(t, 96*clock.Megahertz, dpll.Freq())

	d, err := dpll.Disable()
	require.NoError(t, err)

	// One multiplier step further is 98 MHz and must be refused.
	_, err = d.WithLoopDiv(49, 0).Enable()
	assert.ErrorIs(t, err, clock.ErrBadConfig)

	// 2 MHz * 23 = 46 MHz undershoots the output window.
	_, err = d.WithLoopDiv(23, 0).Enable()
	assert.ErrorIs(t, err, clock.ErrBadConfig)

	// The handle stays usable after a rejection.
	_, err = d.WithLoopDiv(48, 0).Enable()
	require.NoError(t, err)
}

func TestDpllFractionalFreq(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())
	pclk := pclk2MHz(t, &tokens)

	// 2 MHz * (47 + 16/32) = 95 MHz. The fractional part must not be lost
	// to integer truncation.
	dpll, err := clock.NewDpllFromPclk(tokens.Dpll, pclk).WithLoopDiv(47, 16).Enable()
	require.NoError(t, err)
	assert.Equal(t, 95*clock.Megahertz, dpll.Freq())
}

func TestDpllRejectionWritesNothing(t *testing.T) {
	dev, wlog := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())
	pclk := pclk2MHz(t, &tokens)

	d := clock.NewDpllFromPclk(tokens.Dpll, pclk).WithLoopDiv(49, 0)
	wlog.Reset()
	_, err := d.Enable()
	require.ErrorIs(t, err, clock.ErrBadConfig)
	assert.Zero(t, wlog.Count(), "rejected enable must not touch the hardware")
}

func TestDpllFromXoscPredivider(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())

	xosc, err := clock.NewXoscCrystal(tokens.Xosc, 8*clock.Megahertz).Enable()
	require.NoError(t, err)

	// Raw predivider 0 divides by 2, leaving a 4 MHz input above the window.
	d := clock.NewDpllFromXosc(tokens.Dpll, xosc, 0).WithLoopDiv(24, 0)
	_, err = d.Enable()
	assert.ErrorIs(t, err, clock.ErrBadConfig)
	tok := d.Free()

	// Raw predivider 1 divides by 4: a 2 MHz input, 48 MHz out.
	dpll, err := clock.NewDpllFromXosc(tok, xosc, 1).WithLoopDiv(24, 0).Enable()
	require.NoError(t, err)
	assert.Equal(t, 48*clock.Megahertz, dpll.Freq())

	// The crystal prescaler value lands in CTRLB.DIV.
	assert.Equal(t, uint16(1), dev.SYSCTRL.DPLLCTRLB.GetDIV())
	assert.Equal(t, chip.SYSCTRL_DPLLCTRLB_REG_REFCLK_REF1, dev.SYSCTRL.DPLLCTRLB.GetREFCLK())
}

func TestDpllDisableReenableRoundTrip(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())
	pclk := pclk2MHz(t, &tokens)

	dpll, err := clock.NewDpllFromPclk(tokens.Dpll, pclk).
		WithLoopDiv(47, 16).
		WithWakeUpFast(true).
		WithLockBypass(true).
		Enable()
	require.NoError(t, err)

	// The handle keeps its configuration across the cycle, so re-enabling
	// must reproduce the exact register state, not just the enable bit.
	snap := dev.SYSCTRL

	d, err := dpll.Disable()
	require.NoError(t, err)
	assert.False(t, dev.SYSCTRL.DPLLCTRLA.GetENABLE())

	reenabled, err := d.Enable()
	require.NoError(t, err)
	assert.Equal(t, snap, dev.SYSCTRL)
	assert.Equal(t, 95*clock.Megahertz, reenabled.Freq())
}

func TestDpllReadyAndLockAreSeparate(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())
	pclk := pclk2MHz(t, &tokens)

	dpll, err := clock.NewDpllFromPclk(tokens.Dpll, pclk).WithLoopDiv(48, 0).Enable()
	require.NoError(t, err)

	assert.False(t, dpll.Ready())
	assert.False(t, dpll.Locked())

	dev.Settle()
	assert.True(t, dpll.Ready())
	assert.True(t, dpll.Locked())
	dpll.WaitReady()
	dpll.WaitLocked()
}

func TestDpllHoldsItsReferenceChain(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())

	xosc, err := clock.NewXosc(tokens.Xosc, 2*clock.Megahertz).Enable()
	require.NoError(t, err)
	gclk3, err := clock.NewGclk(tokens.Gclks.Gclk3, xosc).Enable()
	require.NoError(t, err)
	pclk := clock.EnablePclk(tokens.Pclks.Dpll, gclk3)

	dpll, err := clock.NewDpllFromPclk(tokens.Dpll, pclk).WithLoopDiv(48, 0).Enable()
	require.NoError(t, err)

	// While the PLL references the channel, nothing upstream can be torn
	// down: not the channel, not its generator, not the oscillator.
	_, err = pclk.Disable()
	assert.ErrorIs(t, err, clock.ErrInUse)
	_, err = gclk3.Disable()
	assert.ErrorIs(t, err, clock.ErrInUse)
	_, err = xosc.Disable()
	assert.ErrorIs(t, err, clock.ErrInUse)

	d, err := dpll.Disable()
	require.NoError(t, err)
	d.Free()

	// The chain unwinds in order once the PLL has let go.
	_, err = pclk.Disable()
	require.NoError(t, err)
	_, err = gclk3.Disable()
	require.NoError(t, err)
	_, err = xosc.Disable()
	require.NoError(t, err)
}

func TestDpllDisableWhileSourcingGclk(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())
	pclk := pclk2MHz(t, &tokens)

	dpll, err := clock.NewDpllFromPclk(tokens.Dpll, pclk).WithLoopDiv(48, 0).Enable()
	require.NoError(t, err)

	gclk4, err := clock.NewGclk(tokens.Gclks.Gclk4, dpll).WithDiv(2).Enable()
	require.NoError(t, err)
	assert.Equal(t, 48*clock.Megahertz, gclk4.Freq())

	_, err = dpll.Disable()
	assert.ErrorIs(t, err, clock.ErrInUse)

	_, err = gclk4.Disable()
	require.NoError(t, err)
	_, err = dpll.Disable()
	require.NoError(t, err)
}
