// Package raster draws orientation previews: a lit unit sphere whose surface
// is rotated by a quaternion.
package raster

import (
	"fmt"
	"image"
	"math"

	"quat-trackball/internal/mathutil"
)

// Procedural surface colors (sRGB).
var (
	oceanColor     = [3]uint8{38, 84, 150}
	gridColor      = [3]uint8{210, 220, 235}
	axisCapColors  = [3][3]uint8{{220, 60, 50}, {70, 190, 80}, {240, 240, 240}}
	gridSpacingDeg = 30.0
	gridWidthDeg   = 1.2
	capRadiusCos   = math.Cos(mathutil.Deg2Rad(12))
)

// RenderGlobe renders a size·supersample square image of the unit sphere seen
// along -z, with its surface rotated by orientation. tex is an optional
// equirectangular map; without it the globe shows a lat/long grid and colored
// caps where the body +X, +Y and +Z axes pierce the surface.
func RenderGlobe(orientation mathutil.Quat, tex *image.NRGBA, size, supersample int) (*image.NRGBA, error) {
	if size <= 0 || supersample <= 0 {
		return nil, fmt.Errorf("raster: size %d and supersample %d must be positive", size, supersample)
	}
	q, err := orientation.Normalize()
	if err != nil {
		return nil, fmt.Errorf("raster: orientation: %w", err)
	}
	// View-space normals are carried back into the body frame.
	toBody := q.Conjugate()

	renderSize := size * supersample
	margin := float64(2 * supersample)
	center := float64(renderSize) / 2
	radius := center - margin

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	for py := 0; py < renderSize; py++ {
		y := -(float64(py) + 0.5 - center) / radius
		for px := 0; px < renderSize; px++ {
			x := (float64(px) + 0.5 - center) / radius
			d2 := x*x + y*y
			if d2 > 1 {
				continue
			}
			n := mathutil.Vec3{x, y, math.Sqrt(1 - d2)}
			body := toBody.Rotate(n)

			cr, cg, cb := surfaceColor(body, tex)
			r, g, b := lc.Shade(cr, cg, cb, lc.ComputeShade(n))
			fb.Set(px, py, r, g, b, 255)
		}
	}

	return fb.Image(), nil
}

// surfaceColor returns the sRGB albedo at a body-frame surface point.
func surfaceColor(p mathutil.Vec3, tex *image.NRGBA) (uint8, uint8, uint8) {
	lat := math.Asin(math.Max(-1, math.Min(1, p[1])))
	lon := math.Atan2(p[0], p[2])

	if tex != nil {
		u := 0.5 + lon/(2*math.Pi)
		v := 0.5 - lat/math.Pi
		r, g, b, _ := SampleEquirect(tex, u, v)
		return r, g, b
	}

	for axis := 0; axis < 3; axis++ {
		if p[axis] >= capRadiusCos {
			c := axisCapColors[axis]
			return c[0], c[1], c[2]
		}
	}

	if onGrid(mathutil.Rad2Deg(lat)) || (math.Abs(p[1]) < 0.98 && onGrid(mathutil.Rad2Deg(lon))) {
		return gridColor[0], gridColor[1], gridColor[2]
	}
	return oceanColor[0], oceanColor[1], oceanColor[2]
}

func onGrid(deg float64) bool {
	m := math.Mod(math.Abs(deg), gridSpacingDeg)
	return m < gridWidthDeg/2 || gridSpacingDeg-m < gridWidthDeg/2
}
