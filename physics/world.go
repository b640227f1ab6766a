// Package physics owns the cp space and hands out opaque body and joint ids.
// Every body carries an explicit Role so callers never have to guess what a
// body is from the components attached to it.
package physics

import (
	"github.com/jakecoffman/cp"
)

// BodyID identifies a body created by a World. The zero value is never issued.
type BodyID uint32

// JointID identifies a joint created by a World. The zero value is never issued.
type JointID uint32

// Role tags what a body is used for.
type Role int

const (
	RoleStatic Role = iota
	RoleController
	RoleChainLink
	RoleDebris
	RoleProp
)

func (r Role) String() string {
	switch r {
	case RoleStatic:
		return "static"
	case RoleController:
		return "controller"
	case RoleChainLink:
		return "chain_link"
	case RoleDebris:
		return "debris"
	case RoleProp:
		return "prop"
	}
	return "unknown"
}

// End selects one side of a two-body joint.
type End int

const (
	EndA End = iota
	EndB
)

// Record is the bookkeeping kept for every live body.
type Record struct {
	Role  Role
	Body  *cp.Body
	Shape *cp.Shape
	Spec  Shape
}

// Config tunes a new World.
type Config struct {
	Gravity    cp.Vector
	Iterations uint
}

// joint remembers which bodies a constraint ties together.
type joint struct {
	constraint *cp.Constraint
	a, b       BodyID
}

// World wraps a cp.Space. Coordinates are y-up.
type World struct {
	space     *cp.Space
	bodies    map[BodyID]*Record
	joints    map[JointID]*joint
	nextBody  BodyID
	nextJoint JointID
}

func NewWorld(c Config) *World {
	space := cp.NewSpace()
	if c.Iterations > 0 {
		space.Iterations = c.Iterations
	}
	space.SetGravity(c.Gravity)
	return &World{
		space:  space,
		bodies: make(map[BodyID]*Record),
		joints: make(map[JointID]*joint),
	}
}

// Space exposes the underlying cp space for queries the World does not wrap.
func (w *World) Space() *cp.Space {
	return w.space
}

// CreateBody adds a body with the given shape at pos. Static shapes are
// attached to a fresh static body so they can be removed individually.
func (w *World) CreateBody(s Shape, mass float64, pos cp.Vector, role Role) BodyID {
	var body *cp.Body
	if role == RoleStatic {
		body = cp.NewStaticBody()
	} else {
		moment := s.moment(mass)
		if s.FixedRotation {
			moment = cp.INFINITY
		}
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(pos)
	w.space.AddBody(body)

	shape := w.space.AddShape(s.build(body))
	shape.SetFriction(s.Friction)
	shape.SetElasticity(s.Elasticity)
	if s.Group != 0 {
		shape.SetFilter(cp.NewShapeFilter(s.Group, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES))
	}

	w.nextBody++
	id := w.nextBody
	w.bodies[id] = &Record{Role: role, Body: body, Shape: shape, Spec: s}
	body.UserData = id
	return id
}

// CreateJoint pins a's anchorA to b's anchorB, both in body-local space. The
// bodies may rotate freely around the pin and do not collide with each other.
func (w *World) CreateJoint(a, b BodyID, anchorA, anchorB cp.Vector) JointID {
	ra, okA := w.bodies[a]
	rb, okB := w.bodies[b]
	if !okA || !okB {
		return 0
	}
	c := w.space.AddConstraint(cp.NewPivotJoint2(ra.Body, rb.Body, anchorA, anchorB))
	c.SetCollideBodies(false)

	w.nextJoint++
	id := w.nextJoint
	w.joints[id] = &joint{constraint: c, a: a, b: b}
	return id
}

// SetJointAnchor rewrites one end's local anchor. Unknown joints are ignored.
func (w *World) SetJointAnchor(id JointID, end End, anchor cp.Vector) {
	j, ok := w.joints[id]
	if !ok {
		return
	}
	pivot, ok := j.constraint.Class.(*cp.PivotJoint)
	if !ok {
		return
	}
	if end == EndA {
		pivot.AnchorA = anchor
	} else {
		pivot.AnchorB = anchor
	}
	j.constraint.ActivateBodies()
}

// JointAnchor reads one end's local anchor.
func (w *World) JointAnchor(id JointID, end End) (cp.Vector, bool) {
	j, ok := w.joints[id]
	if !ok {
		return cp.Vector{}, false
	}
	pivot, ok := j.constraint.Class.(*cp.PivotJoint)
	if !ok {
		return cp.Vector{}, false
	}
	if end == EndA {
		return pivot.AnchorA, true
	}
	return pivot.AnchorB, true
}

func (w *World) Velocity(id BodyID) (cp.Vector, bool) {
	r, ok := w.bodies[id]
	if !ok {
		return cp.Vector{}, false
	}
	return r.Body.Velocity(), true
}

func (w *World) Position(id BodyID) (cp.Vector, bool) {
	r, ok := w.bodies[id]
	if !ok {
		return cp.Vector{}, false
	}
	return r.Body.Position(), true
}

func (w *World) Angle(id BodyID) float64 {
	if r, ok := w.bodies[id]; ok {
		return r.Body.Angle()
	}
	return 0
}

// SetVelocity overwrites a body's linear velocity.
func (w *World) SetVelocity(id BodyID, v cp.Vector) {
	if r, ok := w.bodies[id]; ok {
		r.Body.SetVelocityVector(v)
	}
}

// Teleport moves a body to pos and stops it.
func (w *World) Teleport(id BodyID, pos cp.Vector) {
	r, ok := w.bodies[id]
	if !ok {
		return
	}
	r.Body.SetPosition(pos)
	r.Body.SetVelocityVector(cp.Vector{})
	r.Body.SetAngularVelocity(0)
	// Static shapes are not reindexed by the step, so re-add the shape to
	// move it in the static spatial index.
	if r.Role == RoleStatic && w.space.ContainsShape(r.Shape) {
		w.space.RemoveShape(r.Shape)
		w.space.AddShape(r.Shape)
	}
}

// ApplyImpulse applies an impulse through the body's center of gravity.
func (w *World) ApplyImpulse(id BodyID, impulse cp.Vector) {
	r, ok := w.bodies[id]
	if !ok {
		return
	}
	r.Body.ApplyImpulseAtWorldPoint(impulse, r.Body.Position())
}

// DestroyBody removes a body along with its shapes and every joint attached
// to it. Destroying an unknown or already destroyed body does nothing.
func (w *World) DestroyBody(id BodyID) {
	r, ok := w.bodies[id]
	if !ok {
		return
	}
	delete(w.bodies, id)

	for jid, j := range w.joints {
		if j.a != id && j.b != id {
			continue
		}
		if w.space.ContainsConstraint(j.constraint) {
			w.space.RemoveConstraint(j.constraint)
		}
		delete(w.joints, jid)
	}

	var shapes []*cp.Shape
	r.Body.EachShape(func(s *cp.Shape) {
		shapes = append(shapes, s)
	})
	for _, s := range shapes {
		if w.space.ContainsShape(s) {
			w.space.RemoveShape(s)
		}
	}
	if w.space.ContainsBody(r.Body) {
		w.space.RemoveBody(r.Body)
	}
}

// Exists reports whether id refers to a live body.
func (w *World) Exists(id BodyID) bool {
	_, ok := w.bodies[id]
	return ok
}

// Lookup returns the record for id.
func (w *World) Lookup(id BodyID) (*Record, bool) {
	r, ok := w.bodies[id]
	return r, ok
}

// Grounded reports whether the body is resting on something below it.
func (w *World) Grounded(id BodyID) bool {
	r, ok := w.bodies[id]
	if !ok {
		return false
	}
	grounded := false
	r.Body.EachArbiter(func(arb *cp.Arbiter) {
		// The normal points from this body towards the other one.
		if arb.Normal().Y < -0.5 {
			grounded = true
		}
	})
	return grounded
}

// Each visits every live body in id order.
func (w *World) Each(fn func(BodyID, *Record)) {
	for id := BodyID(1); id <= w.nextBody; id++ {
		if r, ok := w.bodies[id]; ok {
			fn(id, r)
		}
	}
}

// BodyCount returns how many live bodies have the given role.
func (w *World) BodyCount(role Role) int {
	n := 0
	for _, r := range w.bodies {
		if r.Role == role {
			n++
		}
	}
	return n
}

func (w *World) JointCount() int {
	return len(w.joints)
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}
