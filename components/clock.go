package components

import (
	"math"
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the scene's monotonic simulation clock. It only moves
// forward, by one fixed step per physics tick.
type ClockData struct {
	Start   time.Time
	Elapsed time.Duration
	Ticks   int

	seconds float64
}

// Now returns the current simulation time.
func (c *ClockData) Now() time.Time {
	return c.Start.Add(c.Elapsed)
}

// Advance moves the clock forward by dt seconds. Elapsed is rounded from
// the running total so a fixed step never drifts short of whole seconds.
func (c *ClockData) Advance(dt float64) {
	c.seconds += dt
	c.Elapsed = time.Duration(math.Round(c.seconds * float64(time.Second)))
	c.Ticks++
}

var Clock = donburi.NewComponentType[ClockData]()
