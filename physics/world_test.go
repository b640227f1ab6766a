package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func newTestWorld() *World {
	return NewWorld(Config{Gravity: cp.Vector{X: 0, Y: -980}, Iterations: 10})
}

func TestCreateBodyTracksRole(t *testing.T) {
	w := newTestWorld()
	a := w.CreateBody(Capsule(5, 30), 1, cp.Vector{X: 0, Y: 100}, RoleChainLink)
	b := w.CreateBody(Circle(4), 1, cp.Vector{X: 10, Y: 100}, RoleDebris)

	if a == 0 || b == 0 || a == b {
		t.Fatalf("expected distinct non-zero ids, got %d and %d", a, b)
	}
	rec, ok := w.Lookup(a)
	if !ok || rec.Role != RoleChainLink {
		t.Errorf("expected chain link record, got %+v (ok=%v)", rec, ok)
	}
	if got := w.BodyCount(RoleDebris); got != 1 {
		t.Errorf("expected 1 debris body, got %d", got)
	}
	pos, _ := w.Position(b)
	if pos.X != 10 || pos.Y != 100 {
		t.Errorf("expected debris at (10, 100), got (%f, %f)", pos.X, pos.Y)
	}
}

func TestDestroyBodyIsIdempotent(t *testing.T) {
	w := newTestWorld()
	a := w.CreateBody(Circle(4), 1, cp.Vector{}, RoleDebris)
	b := w.CreateBody(Circle(4), 1, cp.Vector{X: 20}, RoleChainLink)
	w.CreateJoint(a, b, cp.Vector{}, cp.Vector{})

	w.DestroyBody(a)
	w.DestroyBody(a)
	w.DestroyBody(BodyID(999))

	if w.Exists(a) {
		t.Error("expected body to be gone after destroy")
	}
	if w.JointCount() != 0 {
		t.Errorf("expected attached joint to be removed, got %d joints", w.JointCount())
	}
	if !w.Exists(b) {
		t.Error("expected unrelated body to survive")
	}
	if !w.Space().ContainsBody(w.bodies[b].Body) {
		t.Error("expected surviving body to remain in the space")
	}
}

func TestSetJointAnchor(t *testing.T) {
	w := newTestWorld()
	a := w.CreateBody(Box(10, 10), 1, cp.Vector{}, RoleController)
	b := w.CreateBody(Capsule(3, 20), 1, cp.Vector{Y: 40}, RoleChainLink)
	j := w.CreateJoint(a, b, cp.Vector{Y: 35}, cp.Vector{Y: 10})

	w.SetJointAnchor(j, EndA, cp.Vector{X: 20, Y: 20})

	got, ok := w.JointAnchor(j, EndA)
	if !ok || got.X != 20 || got.Y != 20 {
		t.Errorf("expected anchor A (20, 20), got (%f, %f)", got.X, got.Y)
	}
	got, _ = w.JointAnchor(j, EndB)
	if got.X != 0 || got.Y != 10 {
		t.Errorf("expected anchor B untouched at (0, 10), got (%f, %f)", got.X, got.Y)
	}

	// Unknown joints are ignored.
	w.SetJointAnchor(JointID(42), EndA, cp.Vector{})
}

func TestCreateJointRejectsUnknownBodies(t *testing.T) {
	w := newTestWorld()
	a := w.CreateBody(Circle(4), 1, cp.Vector{}, RoleProp)
	if j := w.CreateJoint(a, BodyID(77), cp.Vector{}, cp.Vector{}); j != 0 {
		t.Errorf("expected zero joint id for unknown body, got %d", j)
	}
}

func TestStepAppliesGravity(t *testing.T) {
	w := newTestWorld()
	id := w.CreateBody(Circle(4), 1, cp.Vector{Y: 500}, RoleProp)

	for i := 0; i < 10; i++ {
		w.Step(1.0 / 60.0)
	}

	v, _ := w.Velocity(id)
	if v.Y >= 0 {
		t.Errorf("expected body to fall, got vy=%f", v.Y)
	}
	if math.Abs(v.X) > 1e-9 {
		t.Errorf("expected no horizontal drift, got vx=%f", v.X)
	}
}

func TestApplyImpulseChangesVelocity(t *testing.T) {
	w := NewWorld(Config{})
	id := w.CreateBody(Circle(4), 2, cp.Vector{}, RoleDebris)

	w.ApplyImpulse(id, cp.Vector{X: 10, Y: 0})

	v, _ := w.Velocity(id)
	if math.Abs(v.X-5) > 1e-9 {
		t.Errorf("expected vx=5 after impulse 10 on mass 2, got %f", v.X)
	}
}

func TestGroundedOnStaticFloor(t *testing.T) {
	w := newTestWorld()
	w.CreateBody(Box(400, 20), 0, cp.Vector{Y: 0}, RoleStatic)
	player := w.CreateBody(Shape{Kind: ShapeBox, Width: 16, Height: 30, Friction: 1, FixedRotation: true}, 1, cp.Vector{Y: 40}, RoleController)

	if w.Grounded(player) {
		t.Fatal("expected player in the air before stepping")
	}
	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60.0)
	}
	if !w.Grounded(player) {
		pos, _ := w.Position(player)
		t.Errorf("expected player to land on the floor, at y=%f", pos.Y)
	}
}

func TestDestroyBodyRemovesOnlyItsJoints(t *testing.T) {
	w := newTestWorld()
	ids := make([]BodyID, 4)
	for i := range ids {
		ids[i] = w.CreateBody(Circle(4), 1, cp.Vector{X: float64(i) * 10}, RoleChainLink)
	}
	var joints []JointID
	for i := 1; i < len(ids); i++ {
		joints = append(joints, w.CreateJoint(ids[i-1], ids[i], cp.Vector{}, cp.Vector{}))
	}

	w.DestroyBody(ids[1])

	if got := w.JointCount(); got != 1 {
		t.Fatalf("expected 1 joint left, got %d", got)
	}
	if _, ok := w.JointAnchor(joints[2], EndA); !ok {
		t.Error("expected the joint between untouched bodies to survive")
	}
	for _, j := range joints[:2] {
		if _, ok := w.JointAnchor(j, EndA); ok {
			t.Errorf("expected joint %d removed with its body", j)
		}
	}

	// The surviving joint still simulates without the removed neighbours.
	for i := 0; i < 10; i++ {
		w.Step(1.0 / 60.0)
	}
}

func TestTeleportMovesStaticShape(t *testing.T) {
	w := newTestWorld()
	floor := w.CreateBody(Box(40, 10), 0, cp.Vector{}, RoleStatic)

	w.Teleport(floor, cp.Vector{X: 500, Y: 200})

	pos, _ := w.Position(floor)
	if pos.X != 500 || pos.Y != 200 {
		t.Fatalf("expected static body at (500, 200), got %+v", pos)
	}
	rec, _ := w.Lookup(floor)
	all := cp.NewShapeFilter(0, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
	hit := w.Space().PointQueryNearest(cp.Vector{X: 500, Y: 200}, 0, all)
	if hit == nil || hit.Shape != rec.Shape {
		t.Error("expected the moved shape to be found at its new position")
	}
	if old := w.Space().PointQueryNearest(cp.Vector{}, 0, all); old != nil && old.Shape == rec.Shape {
		t.Error("expected nothing left at the old position")
	}
	if !w.Space().ContainsShape(rec.Shape) {
		t.Error("expected the shape to stay in the space")
	}
}
