package engine

import "time"

// Clock measures elapsed time since a resettable mark
type Clock interface {
	Elapsed() time.Duration
	Restart()
}

// WallClock is a Clock backed by the system time
type WallClock struct {
	mark time.Time
	now  func() time.Time
}

// NewWallClock returns a clock whose mark is the current time
func NewWallClock() *WallClock {
	c := &WallClock{now: time.Now}
	c.Restart()
	return c
}

func (c *WallClock) Elapsed() time.Duration {
	return c.now().Sub(c.mark)
}

func (c *WallClock) Restart() {
	c.mark = c.now()
}
