package raster

import (
	"math"

	"quat-trackball/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters. Directions are in view
// space: +x right, +y up, +z towards the viewer.
type LightConfig struct {
	LightDir mathutil.Vec3
	RimDir   mathutil.Vec3
	HalfMain mathutil.Vec3 // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Direct   float64
	Rim      float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig is a key light from the upper left front with a dim rim light behind.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3{-0.5, 0.6, 0.8}.Normalize()
	rimDir := mathutil.Vec3{0.7, -0.2, -0.6}.Normalize()
	viewDir := mathutil.Vec3{0, 0, 1}

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		HalfMain: lightDir.Add(viewDir).Normalize(),
		Ambient:  0.18,
		Direct:   1.10,
		Rim:      0.35,
		SpecInt:  0.30,
		SpecPow:  24.0,
		Exposure: 1.05,
		InvGamma: 1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a unit view-space normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	ndl := math.Max(0, normal.Dot(lc.LightDir))
	rim := math.Max(0, normal.Dot(lc.RimDir))

	// Blinn-Phong specular
	ndh := math.Max(0, normal.Dot(lc.HalfMain))
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + ndl*lc.Direct + rim*lc.Rim + spec
}

// Shade converts an sRGB texel to linear, applies shade and ACES tone mapping
// and encodes back to sRGB.
func (lc *LightConfig) Shade(r, g, b uint8, shade float64) (uint8, uint8, uint8) {
	k := shade * lc.Exposure
	return lc.encode(srgbToLinear[r] * k), lc.encode(srgbToLinear[g] * k), lc.encode(srgbToLinear[b] * k)
}

func (lc *LightConfig) encode(linear float64) uint8 {
	return clamp255(math.Pow(ACESTonemap(linear), lc.InvGamma) * 255)
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
