//go:build !baremetal

// Package chiptest wires a simulated device to the volatile write hook so
// tests can assert on the exact sequence of register stores a clock operation
// performs.
package chiptest

import (
	"testing"
	"unsafe"

	"omibyte.io/samclk/chip"
	"omibyte.io/samclk/volatile"
)

// Write records a single store observed by the hook.
type Write struct {
	Addr  unsafe.Pointer
	Bits  int
	Value uint32
}

// WriteLog accumulates register stores in program order.
type WriteLog struct {
	writes []Write
}

func (l *WriteLog) Count() int { return len(l.writes) }

func (l *WriteLog) Writes() []Write { return l.writes }

// Reset discards everything recorded so far. Call it after setup writes so an
// assertion only covers the operation under test.
func (l *WriteLog) Reset() { l.writes = l.writes[:0] }

// CountTo reports how many recorded stores landed on the register backed by
// addr.
func (l *WriteLog) CountTo(addr unsafe.Pointer) int {
	n := 0
	for _, w := range l.writes {
		if w.Addr == addr {
			n++
		}
	}
	return n
}

// NewDevice returns a fresh simulated device with a write log capturing every
// register store for the remainder of the test. The previous hook is restored
// on cleanup.
func NewDevice(t *testing.T) (*chip.Device, *WriteLog) {
	t.Helper()
	d := chip.NewSim()
	log := &WriteLog{}
	restore := volatile.SetWriteHook(func(addr unsafe.Pointer, bits int, value uint32) {
		log.writes = append(log.writes, Write{Addr: addr, Bits: bits, Value: value})
	})
	t.Cleanup(restore)
	return d, log
}
