package wdt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/samclk/chip"
	"omibyte.io/samclk/chip/chiptest"
	"omibyte.io/samclk/clock"
	"omibyte.io/samclk/peripheral"
	"omibyte.io/samclk/peripheral/wdt"
)

func TestPeriodCycles(t *testing.T) {
	assert.Equal(t, uint32(8), wdt.Cycles8.Cycles())
	assert.Equal(t, uint32(4096), wdt.Cycles4096.Cycles())
	assert.Equal(t, uint32(16384), wdt.Cycles16384.Cycles())
}

func TestConfigureStartsWatchdog(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	buses, clocks, _ := clock.Reset(dev.Take())

	w := wdt.New(clocks.Pac.Steal().WDT)
	require.NoError(t, w.Configure(clocks.PclkWdt, buses.Apb.Wdt, wdt.Cycles4096))

	assert.Equal(t, uint8(wdt.Cycles4096), dev.WDT.CONFIG.GetPER())
	assert.True(t, dev.WDT.CTRL.GetENABLE())

	// 4096 cycles of the 32.768 kHz channel clock.
	assert.Equal(t, uint32(125), w.TimeoutMillis())
}

func TestFeedWritesClearKey(t *testing.T) {
	dev, wlog := chiptest.NewDevice(t)
	buses, clocks, _ := clock.Reset(dev.Take())

	w := wdt.New(clocks.Pac.Steal().WDT)
	require.NoError(t, w.Configure(clocks.PclkWdt, buses.Apb.Wdt, wdt.Cycles8))

	wlog.Reset()
	require.NoError(t, w.Feed())
	require.Equal(t, 1, wlog.Count())
	assert.Equal(t, uint32(chip.WDT_CLEAR_REG_CLEAR_KEY), wlog.Writes()[0].Value)
}

func TestFeedBeforeConfigure(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)

	w := wdt.New(&dev.WDT)
	assert.ErrorIs(t, w.Feed(), peripheral.ErrNotEnabled)
}

func TestDisableStopsWatchdog(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	buses, clocks, _ := clock.Reset(dev.Take())

	w := wdt.New(clocks.Pac.Steal().WDT)
	require.NoError(t, w.Configure(clocks.PclkWdt, buses.Apb.Wdt, wdt.Cycles1024))
	require.NoError(t, w.Disable())
	assert.False(t, dev.WDT.CTRL.GetENABLE())
	assert.ErrorIs(t, w.Feed(), peripheral.ErrNotEnabled)
}

func TestAlwaysOnRefusesReconfigure(t *testing.T) {
	dev, _ := chiptest.NewDevice(t)
	buses, clocks, _ := clock.Reset(dev.Take())

	dev.WDT.CTRL.SetALWAYSON(true)
	w := wdt.New(clocks.Pac.Steal().WDT)
	assert.ErrorIs(t, w.Configure(clocks.PclkWdt, buses.Apb.Wdt, wdt.Cycles8), peripheral.ErrInvalidConfig)
	assert.ErrorIs(t, w.Disable(), peripheral.ErrInvalidConfig)
}
