// Package trackball maps 2D drag positions onto a virtual sphere and turns
// pairs of sphere points into rotation quaternions.
package trackball

import (
	"math"

	"quat-trackball/internal/mathutil"
)

// Point is a screen position in pixels.
type Point struct {
	X, Y float64
}

// Origin tells which screen corner pixel coordinates are measured from.
type Origin int

const (
	// OriginTopLeft is the usual window convention: y grows downward. The y axis
	// is flipped so that sphere +y points up the screen.
	OriginTopLeft Origin = iota
	// OriginBottomLeft has y growing upward, no flip.
	OriginBottomLeft
)

// Mode selects what happens to drag points outside the ball's disk.
type Mode int

const (
	// ModeSphere clamps outside points to the sphere's equator (z = 0).
	ModeSphere Mode = iota
	// ModeHyperbolic glues a hyperbolic sheet z = 1/(2d) to the sphere at d² = ½
	// and normalizes the result onto the sphere.
	ModeHyperbolic
)

// parallelEpsilon is the cross product length below which two sphere points count as parallel.
const parallelEpsilon = 1e-9

// Mapper holds the viewport configuration of a virtual trackball.
type Mapper struct {
	Center Point
	Radius float64 // pixels
	Mode   Mode
	Origin Origin
}

// NewViewportMapper centers the ball in a width×height viewport with a radius of
// radiusFraction·height pixels.
func NewViewportMapper(width, height, radiusFraction float64) Mapper {
	return Mapper{
		Center: Point{width / 2, height / 2},
		Radius: radiusFraction * height,
	}
}

// ProjectToSphere maps p onto the unit sphere for a ball of the given pixel radius
// centered at center (top-left origin, equator clamp).
func ProjectToSphere(p, center Point, radius float64) (mathutil.Vec3, error) {
	return Mapper{Center: center, Radius: radius}.Project(p)
}

// Project maps a screen point to a unit vector on the trackball sphere.
// Points inside the disk land on the near (+z) hemisphere.
func (m Mapper) Project(p Point) (mathutil.Vec3, error) {
	if !(m.Radius > 0) || math.IsInf(m.Radius, 0) {
		return mathutil.Vec3{}, &mathutil.DomainError{Op: "project to sphere", Reason: "radius must be positive"}
	}

	x := (p.X - m.Center.X) / m.Radius
	y := (p.Y - m.Center.Y) / m.Radius
	if m.Origin == OriginTopLeft {
		y = -y
	}
	d2 := x*x + y*y

	var v mathutil.Vec3
	switch m.Mode {
	case ModeHyperbolic:
		if d2 <= 0.5 {
			v = mathutil.Vec3{x, y, math.Sqrt(1 - d2)}
		} else {
			v = mathutil.Vec3{x, y, 0.5 / math.Sqrt(d2)}
		}
	default:
		if d2 <= 1 {
			v = mathutil.Vec3{x, y, math.Sqrt(1 - d2)}
		} else {
			v = mathutil.Vec3{x, y, 0}
		}
	}

	u, err := v.Unit()
	if err != nil {
		return mathutil.Vec3{}, &mathutil.DomainError{Op: "project to sphere", Reason: "point is not finite"}
	}
	return u, nil
}

// RotationBetween returns the rotation taking unit vector p1 onto p2 about p1×p2.
// Parallel and antiparallel points have no unique axis and yield the identity.
func RotationBetween(p1, p2 mathutil.Vec3) mathutil.Quat {
	axis := p1.Cross(p2)
	if axis.Len() < parallelEpsilon {
		return mathutil.Identity()
	}
	angle := math.Acos(math.Max(-1, math.Min(1, p1.Dot(p2))))
	q, err := mathutil.FromAxisAngle(axis, angle)
	if err != nil {
		return mathutil.Identity()
	}
	return q
}

// Rotation returns the rotation for a drag from one screen point to another.
func (m Mapper) Rotation(from, to Point) (mathutil.Quat, error) {
	p1, err := m.Project(from)
	if err != nil {
		return mathutil.Quat{}, err
	}
	p2, err := m.Project(to)
	if err != nil {
		return mathutil.Quat{}, err
	}
	return RotationBetween(p1, p2), nil
}

// Drag applies the drag rotation to orientation in the world frame: rotation·orientation.
func (m Mapper) Drag(orientation mathutil.Quat, from, to Point) (mathutil.Quat, error) {
	r, err := m.Rotation(from, to)
	if err != nil {
		return mathutil.Quat{}, err
	}
	return r.Mul(orientation), nil
}
