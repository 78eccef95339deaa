// Package wdt drives the watchdog timer. The watchdog counts cycles of its
// peripheral channel clock, which runs from generator 2 at power-on reset.
package wdt

import (
	"omibyte.io/samclk/chip"
	"omibyte.io/samclk/clock"
	"omibyte.io/samclk/peripheral"
)

// Period is a timeout expressed in channel clock cycles.
type Period uint8

const (
	Cycles8 Period = iota
	Cycles16
	Cycles32
	Cycles64
	Cycles128
	Cycles256
	Cycles512
	Cycles1024
	Cycles2048
	Cycles4096
	Cycles8192
	Cycles16384
)

// Cycles returns the period length in channel clock cycles.
func (p Period) Cycles() uint32 {
	return 8 << p
}

// WDT is the watchdog timer.
type WDT struct {
	regs    *chip.PeripheralWDT
	freq    clock.Hertz
	enabled bool
}

// New wraps the watchdog register block.
func New(regs *chip.PeripheralWDT) *WDT {
	return &WDT{regs: regs}
}

// Configure sets the timeout period and starts the watchdog. The channel
// clock and the APB gate are taken as arguments so an unclocked watchdog
// cannot be configured; the channel's frequency is recorded for TimeoutMillis.
func (w *WDT) Configure(pclk *clock.Pclk[clock.WdtId], _ clock.ApbClk[clock.WdtId], period Period) error {
	if period > Cycles16384 {
		return peripheral.ErrInvalidConfig
	}
	if w.regs.CTRL.GetALWAYSON() {
		return peripheral.ErrInvalidConfig
	}

	w.freq = pclk.Freq()

	w.sync()
	w.regs.CONFIG.SetPER(uint8(period))
	w.sync()
	w.regs.CTRL.SetENABLE(true)
	w.sync()

	w.enabled = true
	return nil
}

// Feed restarts the watchdog period.
func (w *WDT) Feed() error {
	if !w.enabled {
		return peripheral.ErrNotEnabled
	}
	w.regs.CLEAR.SetCLEAR(chip.WDT_CLEAR_REG_CLEAR_KEY)
	return nil
}

// Disable stops the watchdog. Fails when the always-on fuse is set.
func (w *WDT) Disable() error {
	if w.regs.CTRL.GetALWAYSON() {
		return peripheral.ErrInvalidConfig
	}
	w.sync()
	w.regs.CTRL.SetENABLE(false)
	w.sync()
	w.enabled = false
	return nil
}

// TimeoutMillis returns the configured timeout in milliseconds, derived from
// the channel clock frequency captured at Configure time.
func (w *WDT) TimeoutMillis() uint32 {
	if w.freq == 0 {
		return 0
	}
	period := Period(w.regs.CONFIG.GetPER())
	return period.Cycles() * 1000 / uint32(w.freq)
}

func (w *WDT) sync() {
	for w.regs.STATUS.GetSYNCBUSY() {
	}
}
