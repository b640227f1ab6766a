package factory

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/physics"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newDebrisScene(t *testing.T) (*ecs.ECS, *physics.World, *donburi.Entry) {
	t.Helper()
	cfg.SetDefaults()
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e)
	despawner := CreateDespawner(e)
	world, ok := PhysicsWorld(e)
	if !ok {
		t.Fatal("expected a physics world")
	}
	return e, world, despawner
}

func TestCreateDebris(t *testing.T) {
	tests := []struct {
		name    string
		pos     cp.Vector
		impulse cp.Vector
	}{
		{"upward kick", cp.Vector{X: 10, Y: 20}, cp.Vector{Y: 700}},
		{"downward kick", cp.Vector{X: -40, Y: 5}, cp.Vector{Y: -700}},
		{"diagonal kick", cp.Vector{X: 300, Y: 120}, cp.Vector{X: 550, Y: -550}},
		{"no kick", cp.Vector{}, cp.Vector{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, world, despawner := newDebrisScene(t)

			debris := CreateDebris(e, tt.pos, tt.impulse)
			if debris == nil {
				t.Fatal("expected debris entry")
			}

			id := components.Body.Get(debris).ID
			rec, ok := world.Lookup(id)
			if !ok || rec.Role != physics.RoleDebris {
				t.Fatalf("expected a debris body, got %+v (ok=%v)", rec, ok)
			}
			if pos, _ := world.Position(id); pos != tt.pos {
				t.Errorf("expected debris at %+v, got %+v", tt.pos, pos)
			}
			want := tt.impulse.Mult(1 / cfg.Breakaway.DebrisMass)
			if v, _ := world.Velocity(id); math.Abs(v.X-want.X) > 1e-6 || math.Abs(v.Y-want.Y) > 1e-6 {
				t.Errorf("expected velocity %+v, got %+v", want, v)
			}

			now := components.Clock.Get(despawner).Now()
			expiry, ok := components.Despawn.Get(despawner).Queue.Expiry(debris.Entity())
			if !ok {
				t.Fatal("expected debris queued for removal")
			}
			if got := expiry.Sub(now); got != 5*time.Second {
				t.Errorf("expected a 5s lifetime, got %s", got)
			}
		})
	}
}

func TestCreateDebrisWithoutDespawner(t *testing.T) {
	cfg.SetDefaults()
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e)

	if CreateDebris(e, cp.Vector{}, cp.Vector{Y: 100}) != nil {
		t.Error("expected no debris without a removal queue")
	}
	if world, _ := PhysicsWorld(e); world.BodyCount(physics.RoleDebris) != 0 {
		t.Error("expected no debris body left behind")
	}
}

func TestExpiredDebrisIsRemoved(t *testing.T) {
	e, world, despawner := newDebrisScene(t)
	debris := CreateDebris(e, cp.Vector{X: 5}, cp.Vector{X: 50})
	entity := debris.Entity()
	id := components.Body.Get(debris).ID

	clock := components.Clock.Get(despawner)
	queue := components.Despawn.Get(despawner).Queue
	remove := func(k donburi.Entity) { RemoveBodyEntity(e, k) }

	step := cfg.FixedStep()
	for i := 0; i < cfg.C.TPS*5-1; i++ {
		clock.Advance(step)
		queue.Sweep(clock.Now(), remove)
	}
	if !e.World.Valid(entity) || !world.Exists(id) {
		t.Fatal("expected debris alive one tick before its lifetime ends")
	}

	clock.Advance(step)
	if n := queue.Sweep(clock.Now(), remove); n != 1 {
		t.Fatalf("expected 1 removal, got %d", n)
	}
	if e.World.Valid(entity) {
		t.Error("expected debris entity removed")
	}
	if world.Exists(id) || world.BodyCount(physics.RoleDebris) != 0 {
		t.Error("expected debris body destroyed")
	}

	// Removing it again through another path does nothing.
	RemoveBodyEntity(e, entity)
	if queue.Len() != 0 {
		t.Errorf("expected empty queue, got %d", queue.Len())
	}
}
