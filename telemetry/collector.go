package telemetry

// Collector folds per-tick samples into fixed windows of simulation time.
type Collector struct {
	windowTicks int
	tick        int

	windowStartTick int
	peakRelSpeed    float64

	// Totals at the start of the current window
	breakaways    int
	debrisRemoved int
	respawns      int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticks := 1
	if dt > 0 {
		ticks = int(windowDurationSec/dt + 0.5)
	}
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{windowTicks: ticks}
}

// WindowTicks is how many ticks make up one window.
func (c *Collector) WindowTicks() int {
	return c.windowTicks
}

// Tick records one tick. When the tick closes a window it returns the
// window's stats and true.
func (c *Collector) Tick(s Sample) (WindowStats, bool) {
	c.tick++
	if s.PeakRelSpeed > c.peakRelSpeed {
		c.peakRelSpeed = s.PeakRelSpeed
	}
	if c.tick-c.windowStartTick < c.windowTicks {
		return WindowStats{}, false
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   c.tick,
		SimTimeSec:      s.SimTimeSec,
		Offset:          s.Offset,
		Links:           s.Links,
		DebrisLive:      s.DebrisLive,
		Queued:          s.Queued,
		Breakaways:      s.Breakaways - c.breakaways,
		DebrisRemoved:   s.DebrisRemoved - c.debrisRemoved,
		Respawns:        s.Respawns - c.respawns,
		PeakRelSpeed:    c.peakRelSpeed,
	}

	c.windowStartTick = c.tick
	c.peakRelSpeed = 0
	c.breakaways = s.Breakaways
	c.debrisRemoved = s.DebrisRemoved
	c.respawns = s.Respawns
	return stats, true
}
