package engine

import "time"

// Clock reports the time elapsed between the last two frame ticks. The
// engine normalizes it to seconds.
type Clock interface {
	Delta() time.Duration
}

// FixedClock is a Clock for fixed-rate loops: every frame lasts
// exactly 1/TPS seconds, matching ebiten's fixed tick model.
type FixedClock struct {
	TPS int
}

func (c FixedClock) Delta() time.Duration {
	return time.Second / time.Duration(c.TPS)
}
