package physics

import "github.com/jakecoffman/cp"

// ShapeKind selects the collider geometry.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
	ShapeCapsule
)

// Shape describes a collider in body-local space.
type Shape struct {
	Kind ShapeKind
	// Radius is the circle radius, or the capsule's half-width.
	Radius float64
	// Width and Height size a box. Height is also the capsule's end-to-end length.
	Width, Height float64

	Friction      float64
	Elasticity    float64
	FixedRotation bool
	// Group puts shapes in a collision group; shapes in the same non-zero
	// group never collide with each other.
	Group uint
}

func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius, Friction: 0.7}
}

func Box(w, h float64) Shape {
	return Shape{Kind: ShapeBox, Width: w, Height: h, Friction: 0.7}
}

// Capsule is a vertical segment of the given total length with rounded ends.
func Capsule(radius, length float64) Shape {
	return Shape{Kind: ShapeCapsule, Radius: radius, Height: length, Friction: 0.7}
}

// Endpoints returns the capsule's segment ends in local space.
func (s Shape) Endpoints() (cp.Vector, cp.Vector) {
	half := s.Height/2 - s.Radius
	if half < 0 {
		half = 0
	}
	return cp.Vector{X: 0, Y: half}, cp.Vector{X: 0, Y: -half}
}

func (s Shape) moment(mass float64) float64 {
	switch s.Kind {
	case ShapeBox:
		return cp.MomentForBox(mass, s.Width, s.Height)
	case ShapeCapsule:
		a, b := s.Endpoints()
		return cp.MomentForSegment(mass, a, b, s.Radius)
	default:
		return cp.MomentForCircle(mass, 0, s.Radius, cp.Vector{})
	}
}

func (s Shape) build(body *cp.Body) *cp.Shape {
	switch s.Kind {
	case ShapeBox:
		return cp.NewBox(body, s.Width, s.Height, 0)
	case ShapeCapsule:
		a, b := s.Endpoints()
		return cp.NewSegment(body, a, b, s.Radius)
	default:
		return cp.NewCircle(body, s.Radius, cp.Vector{})
	}
}
