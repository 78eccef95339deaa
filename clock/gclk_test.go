package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/samclk/chip/chiptest"
	"omibyte.io/samclk/clock"
)

func TestGclkDividerWidths(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, tokens := clock.Reset(dev.Take())

	// Generator 1 has a 16-bit divider field.
	gclk1, err := clock.NewGclk(tokens.Gclks.Gclk1, clocks.Osc8m).WithDiv(40_000).Enable()
	require.NoError(t, err)
	assert.Equal(t, clock.Hertz(200), gclk1.Freq())

	// Generator 3 has an 8-bit field; 256 does not fit.
	_, err = clock.NewGclk(tokens.Gclks.Gclk3, clocks.Osc8m).WithDiv(256).Enable()
	assert.ErrorIs(t, err, clock.ErrBadConfig)

	g3, err := clock.NewGclk(tokens.Gclks.Gclk3, clocks.Osc8m).WithDiv(255).Enable()
	require.NoError(t, err)
	assert.Equal(t, 8*clock.Megahertz/255, g3.Freq())
}

func TestGclkPow2Divider(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, tokens := clock.Reset(dev.Take())

	// DIVSEL divides by 2^(exp+1): exp 4 gives /32.
	g4, err := clock.NewGclk(tokens.Gclks.Gclk4, clocks.Osc8m).WithDivPow2(4).Enable()
	require.NoError(t, err)
	assert.Equal(t, 8*clock.Megahertz/32, g4.Freq())
}

func TestGclkPow2DividerLargeExponent(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, tokens := clock.Reset(dev.Take())

	// The hardware accepts any in-range exponent. 2^32 and beyond divide the
	// source past 1 Hz, so the frequency floors to zero instead of
	// overflowing the divider arithmetic.
	g4, err := clock.NewGclk(tokens.Gclks.Gclk4, clocks.Osc8m).WithDivPow2(31).Enable()
	require.NoError(t, err)
	assert.NotPanics(t, func() { assert.Zero(t, g4.Freq()) })

	_, err = g4.Disable()
	require.NoError(t, err)

	g5, err := clock.NewGclk(tokens.Gclks.Gclk5, clocks.Osc8m).WithDivPow2(255).Enable()
	require.NoError(t, err)
	assert.Zero(t, g5.Freq())
}

func TestGclkUserCounting(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, tokens := clock.Reset(dev.Take())

	before := clocks.Osc8m.Users()
	g3, err := clock.NewGclk(tokens.Gclks.Gclk3, clocks.Osc8m).Enable()
	require.NoError(t, err)
	assert.Equal(t, before+1, clocks.Osc8m.Users())

	_, err = g3.Disable()
	require.NoError(t, err)
	assert.Equal(t, before, clocks.Osc8m.Users())
}

func TestGclkSwapMovesOneUser(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, tokens := clock.Reset(dev.Take())

	osc32k, err := clock.NewOsc32k(tokens.Osc32k).Enable()
	require.NoError(t, err)

	require.Equal(t, uint32(1), clocks.Osc8m.Users())
	require.NoError(t, clocks.Gclk0.Swap(osc32k))

	assert.Equal(t, uint32(0), clocks.Osc8m.Users())
	assert.Equal(t, uint32(1), osc32k.Users())
	assert.Equal(t, clock.Osc32kFreq, clocks.Gclk0.Freq())

	// OSC8M lost its last user and can now be disabled.
	_, err = clocks.Osc8m.Disable()
	assert.NoError(t, err)
}

func TestGclkGen1AsSource(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, tokens := clock.Reset(dev.Take())

	gclk1, err := clock.NewGclk(tokens.Gclks.Gclk1, clocks.Osc8m).WithDiv(8).Enable()
	require.NoError(t, err)

	// Generator 1 can feed another generator.
	g5, err := clock.NewGclk(tokens.Gclks.Gclk5, gclk1).Enable()
	require.NoError(t, err)
	assert.Equal(t, clock.Megahertz, g5.Freq())
	assert.Equal(t, uint32(1), gclk1.Users())

	// No other generator can appear in source position.
	_, err = clock.NewGclk(tokens.Gclks.Gclk6, g5).Enable()
	assert.ErrorIs(t, err, clock.ErrBadConfig)
}

func TestGclk0AlwaysOn(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, _ := clock.Reset(dev.Take())

	_, err := clocks.Gclk0.Disable()
	assert.ErrorIs(t, err, clock.ErrAlwaysOn)
}

func TestGclkDisableWhileSourcingPclk(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, tokens := clock.Reset(dev.Take())

	g3, err := clock.NewGclk(tokens.Gclks.Gclk3, clocks.Osc8m).Enable()
	require.NoError(t, err)
	pclk := clock.EnablePclk(tokens.Pclks.Rtc, g3)

	_, err = g3.Disable()
	assert.ErrorIs(t, err, clock.ErrInUse)

	_, err = pclk.Disable()
	require.NoError(t, err)
	_, err = g3.Disable()
	assert.NoError(t, err)
}
