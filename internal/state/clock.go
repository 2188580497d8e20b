package state

import "time"

// StepThreshold is the frame time that must be strictly exceeded before the
// body moves one cell.
const StepThreshold = 75 * time.Millisecond

// ClockPolicy decides what happens to the accumulated time after a step.
type ClockPolicy int

const (
	// ResetOnStep discards everything accumulated, including time past the threshold.
	ResetOnStep ClockPolicy = iota
	// CarryRemainder subtracts the threshold and keeps the rest, capped at one threshold.
	CarryRemainder
)

// MovementClock quantizes frame time into simulation steps. At most one step
// is reported per frame however large the frame delta.
type MovementClock struct {
	Policy ClockPolicy
	acc    time.Duration
}

// Advance adds a frame delta and reports whether a step is due.
func (c *MovementClock) Advance(dt time.Duration) bool {
	if dt > 0 {
		c.acc += dt
	}
	if c.acc <= StepThreshold {
		return false
	}

	switch c.Policy {
	case CarryRemainder:
		c.acc -= StepThreshold
		c.acc = min(c.acc, StepThreshold)
	default:
		c.acc = 0
	}
	return true
}

func (c *MovementClock) Accumulated() time.Duration {
	return c.acc
}

func (c *MovementClock) Reset() {
	c.acc = 0
}
