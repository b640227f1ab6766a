package telemetry

// Sample is the rig's state at the end of one tick. Counters are totals
// since the scene started.
type Sample struct {
	SimTimeSec   float64
	Offset       float64
	Links        int
	DebrisLive   int
	Queued       int
	PeakRelSpeed float64 // Fastest link relative to the controller this tick

	Breakaways    int
	DebrisRemoved int
	Respawns      int
}

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int     `csv:"-"`
	WindowEndTick   int     `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Rig state at window end
	Offset     float64 `csv:"offset"`
	Links      int     `csv:"links"`
	DebrisLive int     `csv:"debris_live"`
	Queued     int     `csv:"queued"`

	// Events during window
	Breakaways    int `csv:"breakaways"`
	DebrisRemoved int `csv:"debris_removed"`
	Respawns      int `csv:"respawns"`

	// Fastest link relative to the controller during the window
	PeakRelSpeed float64 `csv:"peak_rel_speed"`
}
