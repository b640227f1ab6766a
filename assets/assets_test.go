package assets

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedLevel(t *testing.T) {
	loader := NewLevelLoader()
	names, err := loader.LevelNames()
	if err != nil {
		t.Fatalf("LevelNames: %v", err)
	}
	if len(names) == 0 || names[0] != "chain_yard.tmx" {
		t.Fatalf("expected chain_yard.tmx embedded, got %v", names)
	}
	levelPath, err := loader.Resolve(names[0])
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	level, err := loader.LoadLevel(levelPath)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Name != "Chain Yard" {
		t.Errorf("expected level name from map properties, got %q", level.Name)
	}
	if level.Width != 960 || level.Height != 368 {
		t.Errorf("expected 960x368 level, got %dx%d", level.Width, level.Height)
	}
	if len(level.Solids) == 0 {
		t.Fatal("expected solid tiles")
	}
	if len(level.PlayerSpawns) != 1 {
		t.Fatalf("expected 1 spawn, got %d", len(level.PlayerSpawns))
	}
	spawn := level.Spawn()
	if spawn.X != 64 || spawn.Y != 68 {
		t.Errorf("expected spawn flipped to (64, 68), got (%v, %v)", spawn.X, spawn.Y)
	}
	if len(level.DeadZones) != 1 {
		t.Fatalf("expected 1 dead zone, got %d", len(level.DeadZones))
	}
	if dz := level.DeadZones[0]; dz.X != 480 || dz.Y != 0 || dz.Width != 64 || dz.Height != 16 {
		t.Errorf("expected dead zone at the bottom of the pit, got %+v", dz)
	}
}

func TestResolveUnknownLevel(t *testing.T) {
	for _, name := range []string{"nope.tmx", "", "levels/chain_yard.tmx", "chain_yard"} {
		_, err := NewLevelLoader().Resolve(name)
		if err == nil {
			t.Errorf("expected an error resolving %q", name)
			continue
		}
		if !strings.Contains(err.Error(), "chain_yard.tmx") {
			t.Errorf("expected the available levels listed, got %v", err)
		}
	}
}

func TestLoadMissingLevel(t *testing.T) {
	if _, err := NewLevelLoader().LoadLevel("levels/nope.tmx"); err == nil {
		t.Error("expected an error for a missing level")
	}
}

func TestMergeRuns(t *testing.T) {
	// Two rows, three columns:
	//   # . #
	//   # # #
	solid := []bool{
		true, false, true,
		true, true, true,
	}
	got := mergeRuns(solid, 3, 2, 16, 16)
	want := []Rect{
		{X: 0, Y: 16, Width: 16, Height: 16},
		{X: 32, Y: 16, Width: 16, Height: 16},
		{X: 0, Y: 0, Width: 48, Height: 16},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d runs, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestGridLevel(t *testing.T) {
	level := GridLevel(32, 32, 16)

	if level.Width != 512 || level.Height != 512 {
		t.Errorf("expected 512x512, got %dx%d", level.Width, level.Height)
	}
	// Interior cells are decor: 30 columns by 31 rows.
	if got := len(level.Decor); got != 30*31 {
		t.Errorf("expected %d decor tiles, got %d", 30*31, got)
	}
	// One floor run plus a left and right wall cell on every other row.
	if got := len(level.Solids); got != 1+2*31 {
		t.Errorf("expected %d solid runs, got %d", 1+2*31, got)
	}
	floor := level.Solids[len(level.Solids)-1]
	if floor.Y != 0 || floor.Width != 512 {
		t.Errorf("expected full-width floor at y=0, got %+v", floor)
	}
	if spawn := level.Spawn(); spawn.Y <= floor.Y+floor.Height {
		t.Errorf("expected spawn above the floor, got %+v", spawn)
	}
}

func TestRectCenter(t *testing.T) {
	c := Rect{X: 10, Y: 20, Width: 30, Height: 40}.Center()
	if c.X != 25 || c.Y != 40 {
		t.Errorf("expected center (25, 40), got (%v, %v)", c.X, c.Y)
	}
}
