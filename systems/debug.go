package systems

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/physics"
	"github.com/automoto/chainrig/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	drawTriggers(ecs, screen)
	drawJoints(ecs, screen)
	ebitenutil.DebugPrintAt(screen, debugText(ecs, settings), 4, 4)
}

// drawTriggers outlines the trigger objects. They live in the level's y-down
// coordinates so each one is flipped back before drawing.
func drawTriggers(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	triggersEntry, ok := components.Triggers.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	for _, obj := range components.Triggers.Get(triggersEntry).Objects() {
		c := color.RGBA{R: 0, G: 255, B: 255, A: 255} // Cyan default
		if obj.HasTags(tags.ResolvDeadZone) {
			c = cfg.Red
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.Green
		}

		x, y := v.point(obj.X, level.FlipY(obj.Y))
		w, h := v.length(obj.W), v.length(obj.H)
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	}
}

// drawJoints marks every pivot so the base anchor can be watched as it is
// steered.
func drawJoints(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	world := components.Space.Get(spaceEntry).World

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	rig := components.Chain.Get(playerEntry).Rig
	if rig == nil || !rig.HasBase() {
		return
	}

	rec, ok := world.Lookup(rig.Controller())
	if !ok {
		return
	}
	anchor, _ := world.JointAnchor(rig.BaseJoint(), physics.EndA)
	p := rec.Body.LocalToWorld(anchor)
	x, y := v.point(p.X, p.Y)
	vector.StrokeCircle(screen, x, y, 3, 1, cfg.Red, true)
}

func debugText(ecs *ecs.ECS, settings *components.SettingsData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  FPS %.0f  scene %s\n", ebiten.ActualTPS(), ebiten.ActualFPS(), settings.Scene)

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		if rig := components.Chain.Get(playerEntry).Rig; rig != nil {
			fmt.Fprintf(&b, "offset %+.1f  links %d\n", rig.Base.Offset, len(rig.Links()))
		}
		player := components.Player.Get(playerEntry)
		fmt.Fprintf(&b, "grounded %v\n", player.Grounded)
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		fmt.Fprintf(&b, "debris %d\n", components.Space.Get(spaceEntry).BodyCount(physics.RoleDebris))
	}
	if despawner, ok := components.Despawn.First(ecs.World); ok {
		stats := components.Stats.Get(despawner)
		clock := components.Clock.Get(despawner)
		fmt.Fprintf(&b, "queued %d  snapped %d  removed %d  respawns %d\n",
			components.Despawn.Get(despawner).Queue.Len(), stats.Breakaways, stats.DebrisRemoved, stats.Respawns)
		fmt.Fprintf(&b, "sim %s\n", clock.Elapsed.Truncate(100*time.Millisecond))
	}
	if settings.MouseImpulse {
		b.WriteString("mouse impulse on\n")
	}
	return b.String()
}
