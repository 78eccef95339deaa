package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/samclk/chip"
	"omibyte.io/samclk/chip/chiptest"
	"omibyte.io/samclk/clock"
)

func TestOscUlp32kFixedFrequencies(t *testing.T) {
	assert.Equal(t, clock.Hertz(32_768), clock.OscUlp32kFreq)
	assert.Equal(t, clock.Hertz(1_024), clock.OscUlp32k1kFreq)
}

func TestOsc32kTaps(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())

	osc32k, err := clock.NewOsc32k(tokens.Osc32k).With1kOutput(true).Enable()
	require.NoError(t, err)
	assert.Equal(t, clock.Hertz(32_768), osc32k.Freq())
	assert.Equal(t, clock.Hertz(1_024), osc32k.Freq1k())

	assert.True(t, dev.SYSCTRL.OSC32K.GetENABLE())
	assert.True(t, dev.SYSCTRL.OSC32K.GetEN32K())

	assert.False(t, osc32k.Ready())
	dev.Settle()
	assert.True(t, osc32k.Ready())
}

func TestOsc32kWithout1kTap(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())

	osc32k, err := clock.NewOsc32k(tokens.Osc32k).Enable()
	require.NoError(t, err)
	assert.Zero(t, osc32k.Freq1k())
}

func TestXosc32kWriteLockPinsTheClock(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())

	xosc32k, err := clock.NewXosc32kCrystal(tokens.Xosc32k).WithWriteLock(true).Enable()
	require.NoError(t, err)

	_, err = xosc32k.Disable()
	assert.ErrorIs(t, err, clock.ErrAlwaysOn)
}

func TestOsc8mPrescaler(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, tokens := clock.Reset(dev.Take())

	// Release the reset instance so it can be reconfigured.
	osc32k, err := clock.NewOsc32k(tokens.Osc32k).Enable()
	require.NoError(t, err)
	require.NoError(t, clocks.Gclk0.Swap(osc32k))
	o, err := clocks.Osc8m.Disable()
	require.NoError(t, err)

	for presc, want := range map[chip.SYSCTRL_OSC8M_REG_PRESC]clock.Hertz{
		chip.SYSCTRL_OSC8M_REG_PRESC_DIV1: 8 * clock.Megahertz,
		chip.SYSCTRL_OSC8M_REG_PRESC_DIV2: 4 * clock.Megahertz,
		chip.SYSCTRL_OSC8M_REG_PRESC_DIV4: 2 * clock.Megahertz,
		chip.SYSCTRL_OSC8M_REG_PRESC_DIV8: 1 * clock.Megahertz,
	} {
		enabled, err := o.WithPrescaler(presc).Enable()
		require.NoError(t, err)
		assert.Equal(t, want, enabled.Freq())
		assert.Equal(t, presc, dev.SYSCTRL.OSC8M.GetPRESC())
		o, err = enabled.Disable()
		require.NoError(t, err)
	}
}

func TestXoscGainSelection(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())

	xosc, err := clock.NewXoscCrystal(tokens.Xosc, 16*clock.Megahertz).Enable()
	require.NoError(t, err)
	assert.Equal(t, chip.SYSCTRL_XOSC_REG_GAIN_16MHZ, dev.SYSCTRL.XOSC.GetGAIN())
	assert.True(t, dev.SYSCTRL.XOSC.GetXTALEN())

	_, err = xosc.Disable()
	require.NoError(t, err)
	assert.False(t, dev.SYSCTRL.XOSC.GetENABLE())
}

func TestXoscFrequencyWindow(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, _, tokens := clock.Reset(dev.Take())

	_, err := clock.NewXoscCrystal(tokens.Xosc, 100*clock.Kilohertz).Enable()
	assert.ErrorIs(t, err, clock.ErrBadConfig)

	_, err = clock.NewXoscCrystal(tokens.Xosc, 33*clock.Megahertz).Enable()
	assert.ErrorIs(t, err, clock.ErrBadConfig)
}
