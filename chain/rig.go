// Package chain builds the jointed rig that trails the player and lets a
// single steering value move where the rig hangs off the player's body.
package chain

import (
	"math"

	"github.com/automoto/chainrig/gamemath"
	"github.com/automoto/chainrig/physics"
	"github.com/jakecoffman/cp"
)

// Steering constants. The anchor mapping is part of how the rig feels and
// is not tunable.
const (
	SteerStep   = 0.1
	OffsetMin   = -1.0
	OffsetMax   = 1.0
	AnchorRestY = 35.0
	AnchorSwing = 20.0
	AnchorDip   = 15.0
)

// Direction is the discretized steering command for one tick.
type Direction int

const (
	None Direction = iota
	Left
	Right
)

// World is the part of the physics world the rig drives.
type World interface {
	CreateBody(s physics.Shape, mass float64, pos cp.Vector, role physics.Role) physics.BodyID
	CreateJoint(a, b physics.BodyID, anchorA, anchorB cp.Vector) physics.JointID
	SetJointAnchor(id physics.JointID, end physics.End, anchor cp.Vector)
	Velocity(id physics.BodyID) (cp.Vector, bool)
	Position(id physics.BodyID) (cp.Vector, bool)
}

// Params sizes a rig. Every link gets the same mass, collider and visual size.
type Params struct {
	Links      int
	LinkLength float64
	LinkRadius float64
	LinkMass   float64
	// StackStart is the height above the spawn point of the first link's
	// center; later links are stacked StackGap apart above it.
	StackStart float64
	StackGap   float64
	// Group is the collision group shared by the links so neighbours do not
	// fight each other through their capsules.
	Group uint
}

// Base is the steering state attached to the joint between the controller
// and the first link. Offset always stays within [OffsetMin, OffsetMax].
type Base struct {
	Offset float64
}

// Rig is an ordered run of links. Link order is fixed at construction.
type Rig struct {
	controller physics.BodyID
	links      []physics.BodyID
	joints     []physics.JointID
	baseJoint  physics.JointID
	Base       Base
	params     Params
}

// New spawns p.Links links stacked above spawn and joins them to each other
// and to the controller. With zero links the controller is left alone.
func New(w World, controller physics.BodyID, spawn cp.Vector, p Params) *Rig {
	r := &Rig{controller: controller, params: p}
	if p.Links <= 0 {
		return r
	}

	shape := r.LinkShape()
	half := p.LinkLength / 2
	r.links = make([]physics.BodyID, 0, p.Links)
	for i := 0; i < p.Links; i++ {
		pos := cp.Vector{
			X: spawn.X,
			Y: spawn.Y + p.StackStart + float64(i)*(p.LinkLength+p.StackGap),
		}
		r.links = append(r.links, w.CreateBody(shape, p.LinkMass, pos, physics.RoleChainLink))
	}

	r.joints = make([]physics.JointID, 0, p.Links-1)
	for i := 0; i+1 < len(r.links); i++ {
		j := w.CreateJoint(r.links[i], r.links[i+1], cp.Vector{Y: -half}, cp.Vector{Y: half})
		r.joints = append(r.joints, j)
	}

	r.baseJoint = w.CreateJoint(controller, r.links[0], BaseAnchor(r.Base.Offset), cp.Vector{Y: half})
	return r
}

// LinkShape is the collider every link uses.
func (r *Rig) LinkShape() physics.Shape {
	s := physics.Capsule(r.params.LinkRadius, r.params.LinkLength)
	s.Group = r.params.Group
	return s
}

// BaseAnchor maps a steering offset to the anchor on the controller. The
// anchor swings sideways and dips as it moves toward either extreme.
func BaseAnchor(offset float64) cp.Vector {
	return cp.Vector{
		X: offset * AnchorSwing,
		Y: AnchorRestY - AnchorDip*math.Abs(offset),
	}
}

// Steer nudges the base offset one step in dir.
func (r *Rig) Steer(dir Direction) {
	switch dir {
	case Left:
		r.Base.Offset = gamemath.Clamp(r.Base.Offset-SteerStep, OffsetMin, OffsetMax)
	case Right:
		r.Base.Offset = gamemath.Clamp(r.Base.Offset+SteerStep, OffsetMin, OffsetMax)
	}
}

// Apply writes the current base anchor into the physics joint. It must run
// every physics tick before the step, even when the offset has not changed.
func (r *Rig) Apply(w World) {
	if !r.HasBase() {
		return
	}
	w.SetJointAnchor(r.baseJoint, physics.EndA, BaseAnchor(r.Base.Offset))
}

// Teleporter moves bodies without simulating the path between.
type Teleporter interface {
	Position(id physics.BodyID) (cp.Vector, bool)
	Teleport(id physics.BodyID, pos cp.Vector)
}

// Teleport moves the controller to pos and carries every link along,
// keeping the rig's shape and stopping all motion.
func (r *Rig) Teleport(w Teleporter, pos cp.Vector) {
	from, ok := w.Position(r.controller)
	if !ok {
		return
	}
	delta := pos.Sub(from)
	w.Teleport(r.controller, pos)
	for _, id := range r.links {
		if p, ok := w.Position(id); ok {
			w.Teleport(id, p.Add(delta))
		}
	}
}

func (r *Rig) Controller() physics.BodyID { return r.controller }

// Links returns the link ids, first link nearest the controller.
func (r *Rig) Links() []physics.BodyID { return r.links }

// Joints returns the joints between consecutive links.
func (r *Rig) Joints() []physics.JointID { return r.joints }

func (r *Rig) BaseJoint() physics.JointID { return r.baseJoint }

func (r *Rig) HasBase() bool { return r.baseJoint != 0 }

func (r *Rig) Params() Params { return r.params }
