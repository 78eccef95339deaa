package clock_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/samclk/chip/chiptest"
	"omibyte.io/samclk/clock"
)

func TestPclkEnableIsOneStore(t *testing.T) {
	dev, wlog := chiptest.NewDevice(t)
	_, clocks, tokens := clock.Reset(dev.Take())

	wlog.Reset()
	pclk := clock.EnablePclk(tokens.Pclks.Sercom0, clocks.Gclk0)

	// Channel ID, generator selection and enable bit must leave in a single
	// CLKCTRL transaction.
	require.Equal(t, 1, wlog.Count())
	w := wlog.Writes()[0]
	assert.Equal(t, unsafe.Pointer(&dev.GCLK.CLKCTRL), w.Addr)
	assert.Equal(t, 16, w.Bits)
	assert.Equal(t, uint32(clock.PclkSercom0)|0<<8|1<<14, w.Value)

	assert.Equal(t, 8*clock.Megahertz, pclk.Freq())
}

func TestPclkFreqCapturedAtEnable(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, tokens := clock.Reset(dev.Take())

	g3, err := clock.NewGclk(tokens.Gclks.Gclk3, clocks.Osc8m).WithDiv(8).Enable()
	require.NoError(t, err)
	pclk := clock.EnablePclk(tokens.Pclks.Adc, g3)
	require.Equal(t, clock.Megahertz, pclk.Freq())

	// Reconfiguring the generator afterwards does not retroactively change
	// the recorded channel frequency.
	require.NoError(t, g3.SetDiv(4))
	assert.Equal(t, 2*clock.Megahertz, g3.Freq())
	assert.Equal(t, clock.Megahertz, pclk.Freq())
}

func TestPclkDisableReleasesGenerator(t *testing.T) {
	dev, wlog := chiptest.NewDevice(t)
	_, clocks, tokens := clock.Reset(dev.Take())

	users := clocks.Gclk0.Users()
	pclk := clock.EnablePclk(tokens.Pclks.Eic, clocks.Gclk0)
	require.Equal(t, users+1, clocks.Gclk0.Users())

	wlog.Reset()
	tok, err := pclk.Disable()
	require.NoError(t, err)
	assert.Equal(t, users, clocks.Gclk0.Users())

	// The disable store selects the channel with CLKEN clear.
	require.Equal(t, 1, wlog.Count())
	assert.Equal(t, uint32(clock.PclkEic), wlog.Writes()[0].Value)

	// The token can be used again.
	pclk = clock.EnablePclk(tok, clocks.Gclk0)
	assert.Equal(t, 8*clock.Megahertz, pclk.Freq())
}
