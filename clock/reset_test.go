package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/samclk/chip"
	"omibyte.io/samclk/chip/chiptest"
	"omibyte.io/samclk/clock"
)

func TestResetState(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, _ := clock.Reset(dev.Take())

	assert.Equal(t, 8*clock.Megahertz, clocks.Osc8m.Freq())
	assert.Equal(t, 8*clock.Megahertz, clocks.Gclk0.Freq())
	assert.Equal(t, clock.OscUlp32kFreq, clocks.OscUlp32k.Freq())
	assert.Equal(t, clock.OscUlp32kFreq, clocks.Gclk2.Freq())
	assert.Equal(t, clock.OscUlp32kFreq, clocks.PclkWdt.Freq())

	// Each reset clock carries exactly its downstream consumer.
	assert.Equal(t, uint32(1), clocks.Osc8m.Users())
	assert.Equal(t, uint32(1), clocks.OscUlp32k.Users())
	assert.Equal(t, uint32(1), clocks.Gclk2.Users())
	assert.Equal(t, uint32(0), clocks.Gclk0.Users())
}

func TestResetWritesNothing(t *testing.T) {
	dev, wlog := chiptest.NewDevice(t)
	wlog.Reset()
	clock.Reset(dev.Take())
	assert.Zero(t, wlog.Count(), "assembling the reset state must not write registers")
}

func TestTakePanicsOnSecondCall(t *testing.T) {
	dev := chip.NewSim()
	dev.Take()
	assert.Panics(t, func() { dev.Take() })
}

func TestResetBusGates(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	require.Equal(t, uint32(0x7F), dev.PM.AHBMASK.Get())
	require.Equal(t, uint32(0x7F), dev.PM.APBAMASK.Get())
	require.Equal(t, uint32(0x1F), dev.PM.APBBMASK.Get())
	require.Equal(t, uint32(0x01), dev.PM.APBCMASK.Get())
}

func TestPacSteal(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, _ := clock.Reset(dev.Take())

	p := clocks.Pac.Steal()
	require.NotNil(t, p.SYSCTRL)
	assert.Same(t, &dev.SYSCTRL, p.SYSCTRL)
	assert.Same(t, &dev.GCLK, p.GCLK)
}

func TestResetOscUlpCannotBeDisabled(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	_, clocks, _ := clock.Reset(dev.Take())

	// The ultra low power oscillator exposes no Disable at all; the closest
	// a user can get is releasing Gclk2, which still leaves it running.
	_, err := clocks.Gclk2.Disable()
	assert.ErrorIs(t, err, clock.ErrInUse)

	_, err = clocks.PclkWdt.Disable()
	require.NoError(t, err)
	_, err = clocks.Gclk2.Disable()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), clocks.OscUlp32k.Users())
}
