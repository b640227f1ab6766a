package chain

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/chainrig/physics"
	"github.com/jakecoffman/cp"
)

func testParams(n int) Params {
	return Params{
		Links:      n,
		LinkLength: 24,
		LinkRadius: 4,
		LinkMass:   0.5,
		StackStart: 60,
		StackGap:   2,
		Group:      1,
	}
}

func newRigWorld(t *testing.T, n int) (*physics.World, *Rig) {
	t.Helper()
	w := physics.NewWorld(physics.Config{Gravity: cp.Vector{Y: -980}, Iterations: 10})
	player := w.CreateBody(physics.Box(16, 32), 1, cp.Vector{X: 100, Y: 100}, physics.RoleController)
	return w, New(w, player, cp.Vector{X: 100, Y: 100}, testParams(n))
}

func TestNewBuildsTopology(t *testing.T) {
	for _, n := range []int{1, 2, 8} {
		w, r := newRigWorld(t, n)

		if got := len(r.Links()); got != n {
			t.Errorf("n=%d: expected %d links, got %d", n, n, got)
		}
		if got := w.BodyCount(physics.RoleChainLink); got != n {
			t.Errorf("n=%d: expected %d link bodies, got %d", n, n, got)
		}
		if got := len(r.Joints()); got != n-1 {
			t.Errorf("n=%d: expected %d inter-link joints, got %d", n, n-1, got)
		}
		if !r.HasBase() {
			t.Errorf("n=%d: expected a base joint", n)
		}
		if got := w.JointCount(); got != n {
			t.Errorf("n=%d: expected %d joints in total, got %d", n, n, got)
		}
		if r.Base.Offset != 0 {
			t.Errorf("n=%d: expected base offset 0, got %f", n, r.Base.Offset)
		}
	}
}

func TestNewWithoutLinksOmitsBase(t *testing.T) {
	w, r := newRigWorld(t, 0)

	if r.HasBase() {
		t.Error("expected no base joint for an empty rig")
	}
	if len(r.Links()) != 0 || w.JointCount() != 0 {
		t.Errorf("expected no links or joints, got %d links and %d joints", len(r.Links()), w.JointCount())
	}

	// Steering and applying an empty rig is harmless.
	r.Steer(Right)
	r.Apply(w)
}

func TestLinksStackAboveSpawn(t *testing.T) {
	w, r := newRigWorld(t, 4)

	prevY := 100.0
	for i, id := range r.Links() {
		pos, ok := w.Position(id)
		if !ok {
			t.Fatalf("link %d missing from world", i)
		}
		if pos.X != 100 {
			t.Errorf("link %d: expected x=100, got %f", i, pos.X)
		}
		if pos.Y <= prevY {
			t.Errorf("link %d: expected y above %f, got %f", i, prevY, pos.Y)
		}
		prevY = pos.Y
	}
}

func TestBaseAnchor(t *testing.T) {
	tests := []struct {
		offset float64
		want   cp.Vector
	}{
		{0, cp.Vector{X: 0, Y: 35}},
		{1, cp.Vector{X: 20, Y: 20}},
		{-1, cp.Vector{X: -20, Y: 20}},
		{0.5, cp.Vector{X: 10, Y: 27.5}},
	}
	for _, tt := range tests {
		got := BaseAnchor(tt.offset)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("BaseAnchor(%v) = (%v, %v), want (%v, %v)", tt.offset, got.X, got.Y, tt.want.X, tt.want.Y)
		}
	}
}

func TestBaseAnchorNeverRises(t *testing.T) {
	for i := -100; i <= 100; i++ {
		offset := float64(i) / 100
		y := BaseAnchor(offset).Y
		if y > AnchorRestY {
			t.Fatalf("anchor rose above rest at offset %v: y=%v", offset, y)
		}
		if offset != 0 && y == AnchorRestY {
			t.Fatalf("anchor at rest height for non-zero offset %v", offset)
		}
	}
}

func TestSteerClamps(t *testing.T) {
	_, r := newRigWorld(t, 3)

	for i := 0; i < 25; i++ {
		r.Steer(Right)
	}
	if r.Base.Offset != OffsetMax {
		t.Errorf("expected offset clamped to %v, got %v", OffsetMax, r.Base.Offset)
	}

	r.Steer(None)
	if r.Base.Offset != OffsetMax {
		t.Errorf("expected None to leave offset at %v, got %v", OffsetMax, r.Base.Offset)
	}

	for i := 0; i < 40; i++ {
		r.Steer(Left)
	}
	if r.Base.Offset != OffsetMin {
		t.Errorf("expected offset clamped to %v, got %v", OffsetMin, r.Base.Offset)
	}
}

func TestSteerStaysInRange(t *testing.T) {
	_, r := newRigWorld(t, 1)
	rng := rand.New(rand.NewSource(7))
	dirs := []Direction{Left, Right, None}

	for i := 0; i < 5000; i++ {
		r.Steer(dirs[rng.Intn(len(dirs))])
		if r.Base.Offset < OffsetMin || r.Base.Offset > OffsetMax {
			t.Fatalf("step %d: offset %v left [%v, %v]", i, r.Base.Offset, OffsetMin, OffsetMax)
		}
	}
}

func TestApplyWritesControllerAnchor(t *testing.T) {
	w, r := newRigWorld(t, 3)

	r.Steer(Right)
	r.Steer(Right)
	r.Apply(w)

	got, ok := w.JointAnchor(r.BaseJoint(), physics.EndA)
	if !ok {
		t.Fatal("expected base joint to exist")
	}
	want := BaseAnchor(r.Base.Offset)
	if got != want {
		t.Errorf("expected anchor %+v, got %+v", want, got)
	}

	// Re-applying without steering keeps the same anchor.
	r.Apply(w)
	if again, _ := w.JointAnchor(r.BaseJoint(), physics.EndA); again != want {
		t.Errorf("expected idempotent apply, got %+v", again)
	}

	linkEnd, _ := w.JointAnchor(r.BaseJoint(), physics.EndB)
	if linkEnd.Y != 12 {
		t.Errorf("expected link-side anchor at the link's upper end (y=12), got %+v", linkEnd)
	}
}

func TestRigHangsTogetherUnderGravity(t *testing.T) {
	w := physics.NewWorld(physics.Config{Gravity: cp.Vector{Y: -980}, Iterations: 20})
	// A small static controller so the rig hangs from a fixed point
	// without draping over the controller's collider.
	player := w.CreateBody(physics.Circle(1), 0, cp.Vector{X: 0, Y: 0}, physics.RoleStatic)
	r := New(w, player, cp.Vector{}, testParams(4))

	for i := 0; i < 240; i++ {
		r.Apply(w)
		w.Step(1.0 / 60.0)
	}

	last, _ := w.Position(r.Links()[len(r.Links())-1])
	if last.Y >= 35 {
		t.Errorf("expected the rig to hang below its anchor, last link at y=%f", last.Y)
	}
	reach := 35 + 4*24.0 + 5
	if d := last.Length(); d > reach {
		t.Errorf("expected last link within %f of the controller, got %f", reach, d)
	}
}

func TestTeleportKeepsShape(t *testing.T) {
	w, r := newRigWorld(t, 3)
	before := make([]cp.Vector, len(r.Links()))
	for i, id := range r.Links() {
		before[i], _ = w.Position(id)
	}

	r.Teleport(w, cp.Vector{X: 300, Y: 50})

	ctrl, _ := w.Position(r.Controller())
	if ctrl.X != 300 || ctrl.Y != 50 {
		t.Errorf("expected controller at (300, 50), got %+v", ctrl)
	}
	for i, id := range r.Links() {
		p, _ := w.Position(id)
		want := before[i].Add(cp.Vector{X: 200, Y: -50})
		if p != want {
			t.Errorf("link %d: expected %+v, got %+v", i, want, p)
		}
	}
}
