package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"quat-trackball/internal/demo"
	"quat-trackball/internal/mathutil"
)

func main() {
	quat := flag.String("q", "0.83,0.34,-0.44,0.02", "Orientation as w,x,y,z")
	axis := flag.String("axis", "0,1,0", "Axis of the rotation composed onto q")
	angle := flag.Float64("angle", 90, "Angle of the composed rotation in degrees")

	flag.Parse()

	qv, err := parseFloats(*quat, 4)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -q: %v\n", err)
		os.Exit(1)
	}
	av, err := parseFloats(*axis, 3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -axis: %v\n", err)
		os.Exit(1)
	}

	r, err := mathutil.FromAxisAngle(mathutil.Vec3{av[0], av[1], av[2]}, mathutil.Deg2Rad(*angle))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	q := mathutil.NewQuat(qv[0], qv[1], qv[2], qv[3])
	if err := demo.Basis(os.Stdout, q, r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFloats parses a comma-separated list of exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
