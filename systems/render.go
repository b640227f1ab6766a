package systems

import (
	"image/color"

	"github.com/automoto/chainrig/components"
	"github.com/automoto/chainrig/physics"
	"github.com/automoto/chainrig/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps world space (y-up) onto the screen (y-down) around the camera.
type view struct {
	camX, camY   float64
	zoom         float64
	halfW, halfH float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	// Safety check for zero zoom
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return view{
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		zoom:  zoom,
		halfW: float64(width) / 2,
		halfH: float64(height) / 2,
	}, true
}

func (v view) point(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.zoom + v.halfW), float32((v.camY-y)*v.zoom + v.halfH)
}

func (v view) length(l float64) float32 {
	return float32(l * v.zoom)
}

// visible reports whether the world rectangle with bottom-left x, y
// overlaps the screen. A small padding keeps shapes from popping at the edges.
func (v view) visible(x, y, w, h float64) bool {
	const padding = 32.0
	hw, hh := v.halfW/v.zoom+padding, v.halfH/v.zoom+padding
	return x+w >= v.camX-hw && x <= v.camX+hw && y+h >= v.camY-hh && y <= v.camY+hh
}

// fillRect fills a world rectangle given by its bottom-left corner.
func (v view) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	sx, sy := v.point(x, y+h)
	vector.FillRect(screen, sx, sy, v.length(w), v.length(h), clr, false)
}

// DrawBodies renders every dynamic body as its collider shape. Walls are
// drawn by DrawLevel.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	world := components.Space.Get(spaceEntry).World

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Wall) {
			return
		}
		body := components.Body.Get(e)
		rec, ok := world.Lookup(body.ID)
		if !ok {
			return
		}

		clr := body.Color
		if e.HasComponent(components.Debris) {
			clr = fade(clr, components.Debris.Get(e).Alpha)
		}
		drawShape(screen, v, rec, clr)
	})
}

func drawShape(screen *ebiten.Image, v view, rec *physics.Record, clr color.RGBA) {
	pos := rec.Body.Position()
	shape := rec.Spec

	switch shape.Kind {
	case physics.ShapeCircle:
		if !v.visible(pos.X-shape.Radius, pos.Y-shape.Radius, shape.Radius*2, shape.Radius*2) {
			return
		}
		x, y := v.point(pos.X, pos.Y)
		vector.FillCircle(screen, x, y, v.length(shape.Radius), clr, true)

		// Spoke so rolling is visible
		edge := rec.Body.LocalToWorld(cp.Vector{X: shape.Radius})
		ex, ey := v.point(edge.X, edge.Y)
		vector.StrokeLine(screen, x, y, ex, ey, 1, color.RGBA{A: 255}, true)

	case physics.ShapeBox:
		if !v.visible(pos.X-shape.Width/2, pos.Y-shape.Height/2, shape.Width, shape.Height) {
			return
		}
		if shape.FixedRotation || rec.Body.Angle() == 0 {
			v.fillRect(screen, pos.X-shape.Width/2, pos.Y-shape.Height/2, shape.Width, shape.Height, clr)
			return
		}
		hw, hh := shape.Width/2, shape.Height/2
		corners := [4]cp.Vector{
			rec.Body.LocalToWorld(cp.Vector{X: -hw, Y: -hh}),
			rec.Body.LocalToWorld(cp.Vector{X: hw, Y: -hh}),
			rec.Body.LocalToWorld(cp.Vector{X: hw, Y: hh}),
			rec.Body.LocalToWorld(cp.Vector{X: -hw, Y: hh}),
		}
		var path vector.Path
		for i, c := range corners {
			x, y := v.point(c.X, c.Y)
			if i == 0 {
				path.MoveTo(x, y)
			} else {
				path.LineTo(x, y)
			}
		}
		path.Close()
		drawPath(screen, &path, clr)

	case physics.ShapeCapsule:
		a, b := shape.Endpoints()
		wa, wb := rec.Body.LocalToWorld(a), rec.Body.LocalToWorld(b)
		if !v.visible(pos.X-shape.Height/2, pos.Y-shape.Height/2, shape.Height, shape.Height) {
			return
		}
		ax, ay := v.point(wa.X, wa.Y)
		bx, by := v.point(wb.X, wb.Y)
		r := v.length(shape.Radius)
		vector.StrokeLine(screen, ax, ay, bx, by, r*2, clr, true)
		vector.FillCircle(screen, ax, ay, r, clr, true)
		vector.FillCircle(screen, bx, by, r, clr, true)
	}
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func drawPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
