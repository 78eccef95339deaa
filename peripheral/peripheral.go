// Package peripheral holds the pieces shared by the peripheral drivers built
// on top of the clock layer.
package peripheral

import (
	"errors"

	"omibyte.io/samclk/clock"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNotEnabled    = errors.New("peripheral not enabled")
)

// ClockSource reports the frequency a driver is being clocked at. Both
// peripheral channel clocks and generic clock generators satisfy it.
type ClockSource interface {
	Freq() clock.Hertz
}
