package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 7, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTexturePNG(t *testing.T) {
	path := writePNG(t, t.TempDir(), "globe.PNG", 4, 3)
	img, err := LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Fatalf("bounds = %v", got)
	}
	if c := img.NRGBAAt(2, 1); c != (color.NRGBA{R: 20, G: 10, B: 7, A: 255}) {
		t.Errorf("pixel (2,1) = %v", c)
	}
}

func TestLoadTextureErrors(t *testing.T) {
	dir := t.TempDir()
	bmp := filepath.Join(dir, "globe.bmp")
	if err := os.WriteFile(bmp, []byte("BM"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{bmp, bad, filepath.Join(dir, "missing.png")} {
		if _, err := LoadTexture(path); err == nil {
			t.Errorf("LoadTexture(%s): expected error", filepath.Base(path))
		}
	}
}

func TestToNRGBAShiftsOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 7))
	src.Set(6, 6, color.RGBA{R: 255, A: 255})
	dst := toNRGBA(src)
	if dst.Bounds().Min != (image.Point{}) {
		t.Fatalf("origin = %v", dst.Bounds().Min)
	}
	if c := dst.NRGBAAt(1, 1); c.R != 255 || c.A != 255 {
		t.Errorf("pixel = %v", c)
	}
}

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "globe.png", 2, 2)
	c := NewCache()

	var wg sync.WaitGroup
	got := make([]*image.NRGBA, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = c.Resolve(path)
		}(i)
	}
	wg.Wait()

	for i, img := range got {
		if img == nil || img != got[0] {
			t.Fatalf("resolve %d returned %p, want shared %p", i, img, got[0])
		}
	}
	if err := c.Err(path); err != nil {
		t.Errorf("Err = %v", err)
	}

	missing := filepath.Join(dir, "missing.tga")
	if img := c.Resolve(missing); img != nil {
		t.Error("missing texture should resolve to nil")
	}
	if c.Err(missing) == nil {
		t.Error("missing texture should record an error")
	}
	if c.Resolve("") != nil {
		t.Error("empty path should resolve to nil")
	}
}
