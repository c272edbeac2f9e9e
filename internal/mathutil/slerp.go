package mathutil

import "math"

// slerpLinearThreshold is the arc angle below which Slerp falls back to a normalized lerp.
const slerpLinearThreshold = 1e-6

// Slerp interpolates along the great arc from a (t=0) to b (t=1).
// Both inputs are normalized first. With shortestPath set, b is negated when a·b < 0
// so the path covers at most 180° of rotation. t is not clamped; values outside
// [0, 1] extrapolate along the same arc.
func (a Quat) Slerp(b Quat, t float64, shortestPath bool) (Quat, error) {
	qa, err := a.Normalize()
	if err != nil {
		return Quat{}, domainErr("slerp", "zero start quaternion")
	}
	qb, err := b.Normalize()
	if err != nil {
		return Quat{}, domainErr("slerp", "zero end quaternion")
	}

	dot := qa.Dot(qb)
	if shortestPath && dot < 0 {
		qb = qb.Neg()
		dot = -dot
	}

	theta := math.Acos(clamp(dot, -1, 1))
	if theta < slerpLinearThreshold {
		return Lerp(qa, qb, t)
	}
	if math.Pi-theta < slerpLinearThreshold {
		// b ≈ -a: every great circle through a reaches b, take the one through
		// a quaternion orthogonal to a.
		p := Quat{-qa[1], qa[0], -qa[3], qa[2]}
		s, c := math.Sincos(t * math.Pi)
		return qa.Scale(c).Add(p.Scale(s)).Normalize()
	}

	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return qa.Scale(wa).Add(qb.Scale(wb)).Normalize()
}

// Lerp is the normalized linear interpolation between a and b.
func Lerp(a, b Quat, t float64) (Quat, error) {
	q, err := a.Scale(1 - t).Add(b.Scale(t)).Normalize()
	if err != nil {
		return Quat{}, domainErr("lerp", "interpolated quaternion vanished")
	}
	return q, nil
}

// SlerpPow computes the same arc as Slerp as (b·a⁻¹)^t · a.
func SlerpPow(a, b Quat, t float64, shortestPath bool) (Quat, error) {
	if shortestPath && a.Dot(b) < 0 {
		b = b.Neg()
	}
	inv, err := a.Inverse()
	if err != nil {
		return Quat{}, domainErr("slerp", "zero start quaternion")
	}
	if b.Norm() < Epsilon {
		return Quat{}, domainErr("slerp", "zero end quaternion")
	}
	return b.Mul(inv).Pow(t).Mul(a), nil
}
