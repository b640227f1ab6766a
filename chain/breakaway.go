package chain

import (
	"math"

	"github.com/automoto/chainrig/physics"
	"github.com/jakecoffman/cp"
)

// DefaultBreakawaySpeed is the relative speed a link has to exceed to snap.
const DefaultBreakawaySpeed = 1000.0

// Breakaway is a link that moved too fast relative to the controller this tick.
type Breakaway struct {
	Link     physics.BodyID
	Index    int
	Position cp.Vector
	// Delta is the link's velocity minus the controller's.
	Delta cp.Vector
	// Impulse is what the spawned debris should be kicked with.
	Impulse cp.Vector
}

// VelocityReader is the read side of the physics world.
type VelocityReader interface {
	Velocity(id physics.BodyID) (cp.Vector, bool)
	Position(id physics.BodyID) (cp.Vector, bool)
}

// DetectBreakaways compares every link's velocity from the last step with
// the controller's and reports each link whose relative speed is strictly
// above threshold. Links are not touched, so a link that stays fast is
// reported again on every tick. Without a controller velocity nothing is
// reported.
func DetectBreakaways(w VelocityReader, r *Rig, threshold float64) []Breakaway {
	if r == nil {
		return nil
	}
	base, ok := w.Velocity(r.controller)
	if !ok {
		return nil
	}

	var out []Breakaway
	for i, id := range r.links {
		v, ok := w.Velocity(id)
		if !ok {
			continue
		}
		dv := v.Sub(base)
		if dv.Length() <= threshold {
			continue
		}
		pos, _ := w.Position(id)
		out = append(out, Breakaway{
			Link:     id,
			Index:    i,
			Position: pos,
			Delta:    dv,
			Impulse:  dv.Mult(0.5),
		})
	}
	return out
}

// PeakRelativeSpeed returns the fastest link speed relative to the
// controller, or 0 when either is missing.
func PeakRelativeSpeed(w VelocityReader, r *Rig) float64 {
	if r == nil {
		return 0
	}
	base, ok := w.Velocity(r.controller)
	if !ok {
		return 0
	}
	var peak float64
	for _, id := range r.links {
		if v, ok := w.Velocity(id); ok {
			peak = math.Max(peak, v.Sub(base).Length())
		}
	}
	return peak
}
