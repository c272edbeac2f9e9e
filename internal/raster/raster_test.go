package raster_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"quat-trackball/internal/mathutil"
	"quat-trackball/internal/raster"
)

func axisAngle(t *testing.T, axis mathutil.Vec3, angle float64) mathutil.Quat {
	t.Helper()
	q, err := mathutil.FromAxisAngle(axis, angle)
	if err != nil {
		t.Fatal(err)
	}
	return q
}

func render(t *testing.T, q mathutil.Quat, tex *image.NRGBA) *image.NRGBA {
	t.Helper()
	img, err := raster.RenderGlobe(q, tex, 48, 1)
	if err != nil {
		t.Fatalf("RenderGlobe(): %v", err)
	}
	return img
}

func TestRenderGlobeCoverage(t *testing.T) {
	img := render(t, mathutil.Identity(), nil)
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Fatalf("bounds = %v, want 48x48", b)
	}
	if a := img.NRGBAAt(24, 24).A; a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestRenderGlobeSupersample(t *testing.T) {
	img, err := raster.RenderGlobe(mathutil.Identity(), nil, 16, 3)
	if err != nil {
		t.Fatalf("RenderGlobe(): %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 {
		t.Errorf("width = %d, want 48", b.Dx())
	}
}

func TestRenderGlobeFacingAxis(t *testing.T) {
	tests := []struct {
		name     string
		q        mathutil.Quat
		dominant int // channel that must be the largest at the center
	}{
		{"+X faces viewer", axisAngle(t, mathutil.Vec3{0, 1, 0}, -math.Pi/2), 0},
		{"+Y faces viewer", axisAngle(t, mathutil.Vec3{1, 0, 0}, math.Pi/2), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := render(t, tt.q, nil).NRGBAAt(24, 24)
			ch := [3]uint8{c.R, c.G, c.B}
			for i := range ch {
				if i != tt.dominant && ch[i] >= ch[tt.dominant] {
					t.Fatalf("center color = %v, want channel %d dominant", c, tt.dominant)
				}
			}
		})
	}
}

func TestRenderGlobeDoubleCover(t *testing.T) {
	q := mathutil.NewQuat(0.8, -0.18, 0.27, 0.51)
	a := render(t, q, nil)
	b := render(t, q.Neg(), nil)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("q and -q render differently")
	}

	c := render(t, axisAngle(t, mathutil.Vec3{0, 0, 1}, 0.5), nil)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("different orientations render identically")
	}
}

func TestRenderGlobeTexture(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			tex.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	c := render(t, mathutil.Identity(), tex).NRGBAAt(24, 24)
	if !(c.R > c.G && c.G > c.B) {
		t.Errorf("center color = %v, want texture hue R > G > B", c)
	}
}

func TestRenderGlobeErrors(t *testing.T) {
	if _, err := raster.RenderGlobe(mathutil.Quat{}, nil, 8, 1); !errors.Is(err, mathutil.ErrDomain) {
		t.Errorf("zero orientation: err = %v, want ErrDomain", err)
	}
	if _, err := raster.RenderGlobe(mathutil.Identity(), nil, 0, 1); err == nil {
		t.Error("size 0 succeeded")
	}
}

func TestSampleEquirect(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{R: 0, A: 255})
	tex.SetNRGBA(1, 0, color.NRGBA{R: 200, A: 255})

	r1, _, _, _ := raster.SampleEquirect(tex, 0.25, 0.5)
	r2, _, _, _ := raster.SampleEquirect(tex, 1.25, 0.5)
	r3, _, _, _ := raster.SampleEquirect(tex, -0.75, 0.5)
	if r1 != 50 || r2 != r1 || r3 != r1 {
		t.Errorf("SampleEquirect wrap = %d, %d, %d, want 50 each", r1, r2, r3)
	}
	if _, _, _, a := raster.SampleEquirect(tex, 0.5, 7); a != 255 {
		t.Errorf("alpha with clamped v = %d, want 255", a)
	}
}

func TestComputeShade(t *testing.T) {
	lc := raster.DefaultLightConfig()
	lit := lc.ComputeShade(lc.LightDir)
	dark := lc.ComputeShade(lc.LightDir.Neg())
	if !(lit > dark) || dark < lc.Ambient {
		t.Errorf("shade toward light = %v, away = %v", lit, dark)
	}
}
