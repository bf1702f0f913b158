package game

import "time"

// Clock supplies the driver's notion of simulation time in seconds. It must
// be monotonically non-decreasing.
type Clock interface {
	Now() float64
}

// wallClock measures seconds since its creation on the monotonic clock.
type wallClock struct {
	start time.Time
}

func newWallClock() *wallClock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
