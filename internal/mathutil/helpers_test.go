package mathutil_test

import (
	"math/rand/v2"
	"testing"

	"quat-trackball/internal/mathutil"
)

const tol = 1e-9

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func randomUnitQuat(r *rand.Rand) mathutil.Quat {
	for {
		q := mathutil.NewQuat(r.NormFloat64(), r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		if n, err := q.Normalize(); err == nil {
			return n
		}
	}
}

func randomVec(r *rand.Rand) mathutil.Vec3 {
	return mathutil.Vec3{r.Float64()*4 - 2, r.Float64()*4 - 2, r.Float64()*4 - 2}
}

func assertVec(t *testing.T, label string, got, want mathutil.Vec3) {
	t.Helper()
	if !got.ApproxEqual(want, tol) {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

func assertQuat(t *testing.T, label string, got, want mathutil.Quat) {
	t.Helper()
	if !got.ApproxEqual(want, tol) {
		t.Errorf("%s = %v, want %v", label, [4]float64(got), [4]float64(want))
	}
}
