package mathutil

import (
	"fmt"
	"math"
	"strings"
)

// Quat represents a quaternion (w, x, y, z): scalar part w, vector part (x, y, z).
// Orientation quaternions are unit length, but nothing here enforces it.
type Quat [4]float64

// NewQuat stores the components verbatim.
func NewQuat(w, x, y, z float64) Quat {
	return Quat{w, x, y, z}
}

// Identity is the no-rotation quaternion (1, 0, 0, 0).
func Identity() Quat {
	return Quat{1, 0, 0, 0}
}

func (q Quat) W() float64 { return q[0] }
func (q Quat) X() float64 { return q[1] }
func (q Quat) Y() float64 { return q[2] }
func (q Quat) Z() float64 { return q[3] }

// Vec returns the vector part.
func (q Quat) Vec() Vec3 { return Vec3{q[1], q[2], q[3]} }

// FromAxisAngle returns (cos θ/2, sin θ/2 · axis). The axis is normalized here.
func FromAxisAngle(axis Vec3, angle float64) (Quat, error) {
	n, err := axis.Unit()
	if err != nil {
		return Quat{}, domainErr("axis-angle", "zero-length axis")
	}
	s, c := math.Sincos(angle / 2)
	return Quat{c, n[0] * s, n[1] * s, n[2] * s}, nil
}

// FromEuler converts Euler XYZ (radians) to a quaternion: rotate about X, then Y, then Z
// (world axes), i.e. Rz·Ry·Rx.
func FromEuler(rx, ry, rz float64) Quat {
	sx, cx := math.Sincos(rx * 0.5)
	sy, cy := math.Sincos(ry * 0.5)
	sz, cz := math.Sincos(rz * 0.5)

	return Quat{
		cx*cy*cz + sx*sy*sz, // w
		sx*cy*cz - cx*sy*sz, // x
		cx*sy*cz + sx*cy*sz, // y
		cx*cy*sz - sx*sy*cz, // z
	}
}

// ToAxisAngle returns the unit rotation axis and the angle in [0, 2π].
// A rotation by (almost) nothing has no axis; (0, 0, 1) is returned with angle 0.
func (q Quat) ToAxisAngle() (Vec3, float64) {
	n, err := q.Normalize()
	if err != nil {
		return Vec3{0, 0, 1}, 0
	}
	v := n.Vec()
	s := v.Len()
	if s < 1e-9 {
		return Vec3{0, 0, 1}, 0
	}
	return v.Scale(1 / s), 2 * math.Atan2(s, n[0])
}

func (q Quat) NormSq() float64 {
	return q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
}

// Norm returns sqrt(w²+x²+y²+z²).
func (q Quat) Norm() float64 {
	return math.Sqrt(q.NormSq())
}

func (q Quat) Normalize() (Quat, error) {
	n := q.Norm()
	if n < Epsilon || math.IsNaN(n) {
		return Quat{}, domainErr("normalize quaternion", "zero norm")
	}
	return q.Scale(1 / n), nil
}

func (q Quat) Conjugate() Quat {
	return Quat{q[0], -q[1], -q[2], -q[3]}
}

// Inverse returns conj(q)/|q|². Unit quaternions skip the division.
func (q Quat) Inverse() (Quat, error) {
	n2 := q.NormSq()
	if n2 < Epsilon*Epsilon || math.IsNaN(n2) {
		return Quat{}, domainErr("invert quaternion", "zero norm")
	}
	if math.Abs(n2-1) < 1e-15 {
		return q.Conjugate(), nil
	}
	return q.Conjugate().Scale(1 / n2), nil
}

// Neg returns -q, which represents the same rotation as q.
func (q Quat) Neg() Quat {
	return Quat{-q[0], -q[1], -q[2], -q[3]}
}

func (q Quat) Scale(s float64) Quat {
	return Quat{q[0] * s, q[1] * s, q[2] * s, q[3] * s}
}

func (a Quat) Add(b Quat) Quat {
	return Quat{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Mul returns the Hamilton product a·b.
// As rotations, a.Mul(b) applies b first, then a in the world frame.
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		a[0]*b[0] - a[1]*b[1] - a[2]*b[2] - a[3]*b[3],
		a[0]*b[1] + a[1]*b[0] + a[2]*b[3] - a[3]*b[2],
		a[0]*b[2] - a[1]*b[3] + a[2]*b[0] + a[3]*b[1],
		a[0]*b[3] + a[1]*b[2] - a[2]*b[1] + a[3]*b[0],
	}
}

// Dot is the 4D component dot product. For unit quaternions |a·b| = cos(half the angle between them).
func (a Quat) Dot(b Quat) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Rotate applies q·(0,v)·q⁻¹ assuming q is unit length.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := q.Vec()
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q[0])).Add(u.Cross(t))
}

// Transform rotates v by q. q is normalized first, so any non-zero quaternion is accepted.
func (q Quat) Transform(v Vec3) (Vec3, error) {
	n, err := q.Normalize()
	if err != nil {
		return Vec3{}, domainErr("transform vector", "zero quaternion")
	}
	return n.Rotate(v), nil
}

// Pow raises q to a real exponent in polar form. The zero quaternion stays zero.
func (q Quat) Pow(e float64) Quat {
	n := q.Norm()
	if n < 1e-10 {
		return Quat{}
	}
	np := math.Pow(n, e)
	theta := math.Acos(clamp(q[0]/n, -1, 1))
	w := np * math.Cos(e*theta)

	vl := q.Vec().Len()
	if vl < 1e-10 {
		return Quat{w, 0, 0, 0}
	}
	f := np * math.Sin(e*theta) / vl
	return Quat{w, q[1] * f, q[2] * f, q[3] * f}
}

// ApproxEqual compares component-wise with absolute tolerance eps.
func (a Quat) ApproxEqual(b Quat, eps float64) bool {
	for i := 0; i < 4; i++ {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// SameRotation reports whether a and b describe the same orientation (a ≈ b or a ≈ -b).
func (a Quat) SameRotation(b Quat, eps float64) bool {
	return a.ApproxEqual(b, eps) || a.ApproxEqual(b.Neg(), eps)
}

// Format renders "w ± |x|i ± |y|j ± |z|k" with the given number of decimals.
func (q Quat) Format(precision int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%.*f", precision, q[0])
	for i, suffix := range [3]string{"i", "j", "k"} {
		c := q[i+1]
		sign := "+"
		if c < 0 {
			sign = "-"
		}
		fmt.Fprintf(&sb, " %s %.*f%s", sign, precision, math.Abs(c), suffix)
	}
	return sb.String()
}

func (q Quat) String() string {
	return q.Format(2)
}
