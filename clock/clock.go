// Package clock manages the SAM D21 clock tree: oscillators, the DFLL and
// DPLL, generic clock generators, peripheral channel clocks and the AHB/APB
// bus gates.
//
// Every clock moves through the same lifecycle. A token proves the clock is
// unconfigured and exists exactly once per clock. Constructing a handle from
// a token attaches a configuration, mutated through chainable setters while
// the clock is off. Enable validates the configuration, performs the register
// writes and returns the enabled form, which carries the output frequency and
// a usage counter. A clock can only be disabled once its counter has dropped
// back to zero; consumers increment it when they bind to the clock and
// decrement it when they release it.
package clock

import "errors"

var (
	// ErrInUse is returned by Disable while downstream consumers still hold
	// the clock.
	ErrInUse = errors.New("clock: still in use")

	// ErrBadConfig is returned by Enable when the stored configuration
	// violates a hardware constraint. The handle is left untouched and no
	// register write has happened.
	ErrBadConfig = errors.New("clock: configuration out of range")

	// ErrAlwaysOn is returned when disabling a clock the hardware cannot run
	// without.
	ErrAlwaysOn = errors.New("clock: cannot be disabled")
)

// Hertz is a frequency in Hz.
type Hertz uint32

const (
	Kilohertz Hertz = 1_000
	Megahertz Hertz = 1_000_000
)

// users counts downstream consumers of an enabled clock.
type users struct {
	count uint32
}

func (u *users) use() { u.count++ }

func (u *users) unuse() {
	if u.count == 0 {
		panic("clock: user count underflow")
	}
	u.count--
}

// Users reports how many consumers are currently bound to the clock.
func (u *users) Users() uint32 { return u.count }
