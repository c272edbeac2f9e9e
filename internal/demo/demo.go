// Package demo prints the console walkthroughs of the quaternion toolkit:
// basis transforms, trackball drags and SLERP paths.
package demo

import (
	"bufio"
	"fmt"
	"io"

	"quat-trackball/internal/mathutil"
	"quat-trackball/internal/trackball"
)

// Basis vectors i, j, k.
var (
	IHat = mathutil.Vec3{1, 0, 0}
	JHat = mathutil.Vec3{0, 1, 0}
	KHat = mathutil.Vec3{0, 0, 1}
)

// Drag is one scripted mouse drag.
type Drag struct {
	Start, End trackball.Point
}

var ordinals = []string{"First", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh", "Eighth", "Ninth", "Tenth"}

// Basis prints q applied to i, j, k, then composes r onto q in the world frame
// and prints the new orientation and basis.
func Basis(w io.Writer, q, r mathutil.Quat) error {
	bw := bufio.NewWriter(w)
	if err := printBasis(bw, q); err != nil {
		return err
	}
	q = r.Mul(q)
	fmt.Fprintln(bw, q)
	if err := printBasis(bw, q); err != nil {
		return err
	}
	return bw.Flush()
}

func printBasis(w io.Writer, q mathutil.Quat) error {
	for _, v := range [3]mathutil.Vec3{IHat, JHat, KHat} {
		t, err := q.Transform(v)
		if err != nil {
			return fmt.Errorf("demo: basis: %w", err)
		}
		fmt.Fprintln(w, t)
	}
	return nil
}

// Rotate replays drags on a trackball starting from the identity orientation and
// prints every intermediate value. It returns the final orientation.
func Rotate(w io.Writer, m trackball.Mapper, drags []Drag) (mathutil.Quat, error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "=== Simple Mouse Drag Rotation Demo ===")

	orientation := mathutil.Identity()
	for i, d := range drags {
		fmt.Fprintf(bw, "\n--- %s Drag Event ---\n\n", ordinal(i))
		fmt.Fprintf(bw, "Starting orientation: %s\n", orientation)
		fmt.Fprintf(bw, "Mouse start: (%g, %g)\n", d.Start.X, d.Start.Y)
		fmt.Fprintf(bw, "Mouse end: (%g, %g)\n", d.End.X, d.End.Y)

		p1, err := m.Project(d.Start)
		if err != nil {
			return mathutil.Quat{}, fmt.Errorf("demo: drag %d start: %w", i+1, err)
		}
		p2, err := m.Project(d.End)
		if err != nil {
			return mathutil.Quat{}, fmt.Errorf("demo: drag %d end: %w", i+1, err)
		}
		fmt.Fprintf(bw, "Sphere point 1: %s\n", p1)
		fmt.Fprintf(bw, "Sphere point 2: %s\n", p2)

		rotation := trackball.RotationBetween(p1, p2)
		fmt.Fprintf(bw, "Calculated rotation: %s\n", rotation)
		fmt.Fprintf(bw, "Rotation description: %s\n", describe(rotation))

		orientation = rotation.Mul(orientation)
		label := "New"
		if i == len(drags)-1 && len(drags) > 1 {
			label = "Final"
		}
		fmt.Fprintf(bw, "%s orientation: %s\n", label, orientation)
	}

	return orientation, bw.Flush()
}

// SlerpBoth prints the long path and then the shortest path between q1 and q2.
func SlerpBoth(w io.Writer, q1, q2 mathutil.Quat, steps int) error {
	if _, err := fmt.Fprint(w, "\n=== SLERP Demo ===\n\n"); err != nil {
		return err
	}
	if err := Slerp(w, q1, q2, false, steps); err != nil {
		return err
	}
	return Slerp(w, q1, q2, true, steps)
}

// Slerp prints steps+1 interpolated orientations from q1 to q2 at t = 0, 1/steps, ..., 1.
func Slerp(w io.Writer, q1, q2 mathutil.Quat, shortestPath bool, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("demo: slerp: steps must be positive, got %d", steps)
	}
	bw := bufio.NewWriter(w)

	pathType := "Long Path"
	if shortestPath {
		pathType = "Shortest Path"
	}
	fmt.Fprintf(bw, "\n--- SLERP %s ---\n\n", pathType)
	fmt.Fprint(bw, "\nInterpolating between q_1 and q_2\n\n")
	fmt.Fprintf(bw, "q_1=%s\n", q1)
	fmt.Fprintf(bw, "q_2=%s\n", q2)
	fmt.Fprintf(bw, "Ensure shortest path: %s\n", titleBool(shortestPath))

	target := q2
	if shortestPath {
		dot := q1.Dot(q2)
		fmt.Fprintf(bw, "Dot product: %.3f\n", dot)
		if dot < 0 {
			target = q2.Neg()
			fmt.Fprintf(bw, "Dot product is negative, so negated q2 is closer: %s\n", target)
			fmt.Fprintf(bw, "Changing target quaternion q_2 to %s\n", target)
		}
	}

	inv, err := q1.Inverse()
	if err != nil {
		return fmt.Errorf("demo: slerp: %w", err)
	}
	total := target.Mul(inv)
	axis, angle := total.ToAxisAngle()
	fmt.Fprintf(bw, "Total rotation: %.1f° around axis %s\n\n", mathutil.Rad2Deg(angle), axis)

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		q, err := q1.Slerp(q2, t, shortestPath)
		if err != nil {
			return fmt.Errorf("demo: slerp t=%.2f: %w", t, err)
		}
		fmt.Fprintf(bw, "t=%.2f: q=%s\n", t, q)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

func describe(q mathutil.Quat) string {
	axis, angle := q.ToAxisAngle()
	return fmt.Sprintf("Rotation by %.1f° around axis %s", mathutil.Rad2Deg(angle), axis)
}

func ordinal(i int) string {
	if i < len(ordinals) {
		return ordinals[i]
	}
	return fmt.Sprintf("#%d", i+1)
}

func titleBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
