package core

import "time"

// NewClock starts timing the render loop.
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// Clock counts rendered frames against wall-clock time so the
// aggregate frame rate can be reported when the loop ends.
type Clock struct {
	start  time.Time
	frames int
}

// Tick records one completed frame.
func (c *Clock) Tick() {
	c.frames++
}

// Frames gets the number of frames recorded so far.
func (c *Clock) Frames() int {
	return c.frames
}

// Elapsed gets the wall-clock time since the clock was started.
func (c *Clock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Fps gets the average frames per second across the whole run.
func (c *Clock) Fps() float64 {
	seconds := c.Elapsed().Seconds()
	if seconds == 0 {
		return 0
	}
	return float64(c.frames) / seconds
}
