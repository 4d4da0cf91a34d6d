package clock

import (
	"time"

	"pomodial/internal/ports"
)

var _ ports.Clock = (*Monotonic)(nil)

// Monotonic implements ports.Clock on the runtime's monotonic clock.
// Readings are milliseconds since the clock was created and never decrease,
// even across wall-clock adjustments.
type Monotonic struct {
	epoch time.Time
}

// NewMonotonic creates a clock with its epoch at the call instant.
func NewMonotonic() *Monotonic {
	return &Monotonic{epoch: time.Now()}
}

// Now returns monotonic milliseconds since the epoch.
func (c *Monotonic) Now() int64 {
	return time.Since(c.epoch).Milliseconds()
}
