package config_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quat-trackball/internal/config"
	"quat-trackball/internal/mathutil"
	"quat-trackball/internal/trackball"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `{"viewport_width": 800, "render_size": 128}`))
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.ViewportWidth != 800 || cfg.ViewportHeight != 540 {
		t.Errorf("viewport = %gx%g, want 800x540", cfg.ViewportWidth, cfg.ViewportHeight)
	}
	if cfg.RenderSize != 128 {
		t.Errorf("RenderSize = %d, want 128", cfg.RenderSize)
	}
	if len(cfg.Drags) != 2 {
		t.Errorf("len(Drags) = %d, want the 2 default drags", len(cfg.Drags))
	}
}

func TestLoadEulerKeyframe(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `{"slerp": {"to": {"euler_deg": [0, 0, 90]}, "steps": 4, "shortest_path": false}}`))
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate(): %v", err)
	}

	to, err := cfg.Slerp.To.Quaternion()
	if err != nil {
		t.Fatalf("Quaternion(): %v", err)
	}
	want, _ := mathutil.FromAxisAngle(mathutil.Vec3{0, 0, 1}, math.Pi/2)
	if !to.ApproxEqual(want, 1e-12) {
		t.Errorf("slerp.to = %v, want %v", to, want)
	}
	if cfg.Slerp.To.Quat != nil {
		t.Error("slerp.to kept the default quat next to euler_deg")
	}
	if cfg.Slerp.Steps != 4 || cfg.Slerp.ShortestPathEnabled() {
		t.Errorf("slerp = %+v, want 4 steps on the long path", cfg.Slerp)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil || !strings.HasPrefix(err.Error(), "config: read") {
		t.Errorf("Load(missing) err = %v", err)
	}
	if _, err := config.Load(writeConfig(t, `{"drags": 5}`)); err == nil || !strings.HasPrefix(err.Error(), "config: parse") {
		t.Errorf("Load(bad json) err = %v", err)
	}
}

func TestResolve(t *testing.T) {
	var cfg config.Config
	cfg.Resolve(config.Flags{Size: 96, Steps: 20, LongPath: true, Projection: "hyperbolic"})

	if cfg.RenderSize != 96 || cfg.Slerp.Steps != 20 || cfg.Projection != "hyperbolic" {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Slerp.ShortestPathEnabled() {
		t.Error("LongPath flag did not disable shortest path")
	}
	if cfg.ViewportWidth != 960 || cfg.ViewportHeight != 540 || cfg.RadiusFraction != 0.5 {
		t.Errorf("viewport defaults = %gx%g r=%g", cfg.ViewportWidth, cfg.ViewportHeight, cfg.RadiusFraction)
	}
	if cfg.Supersample != 2 || cfg.Workers <= 0 || cfg.OutputDir != "renders" {
		t.Errorf("render defaults = %+v", cfg)
	}

	cfg = config.Config{}
	cfg.Resolve(config.Flags{})
	if !cfg.Slerp.ShortestPathEnabled() || cfg.Projection != "sphere" {
		t.Errorf("zero config resolved to %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	q := [4]float64{}
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"default", func(*config.Config) {}, ""},
		{"bad viewport", func(c *config.Config) { c.ViewportHeight = math.Inf(1) }, "config: viewport"},
		{"bad radius", func(c *config.Config) { c.RadiusFraction = -1 }, "config: radius_fraction"},
		{"bad projection", func(c *config.Config) { c.Projection = "cube" }, "config: projection"},
		{"bad origin", func(c *config.Config) { c.Origin = "middle" }, "config: origin"},
		{"nan drag", func(c *config.Config) { c.Drags[0].End[1] = math.NaN() }, "config: drags[0]"},
		{"zero keyframe", func(c *config.Config) { c.Slerp.From = config.Orientation{Quat: &q} }, "config: slerp.from"},
		{"supersample", func(c *config.Config) { c.Supersample = 9 }, "config: supersample"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.HasPrefix(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want prefix %q", err, tt.wantErr)
			}
		})
	}
}

func TestMapper(t *testing.T) {
	cfg := config.Default()
	m, err := cfg.Mapper()
	if err != nil {
		t.Fatalf("Mapper(): %v", err)
	}
	want := trackball.Mapper{
		Center: trackball.Point{X: 480, Y: 270},
		Radius: 270,
		Mode:   trackball.ModeHyperbolic,
		Origin: trackball.OriginTopLeft,
	}
	if m != want {
		t.Errorf("Mapper() = %+v, want %+v", m, want)
	}
}

func TestDragPoints(t *testing.T) {
	from, to := config.Default().Drags[0].Points()
	if from != (trackball.Point{X: 384, Y: 432}) || to != (trackball.Point{X: 653, Y: 243}) {
		t.Errorf("Points() = %v, %v", from, to)
	}
}
