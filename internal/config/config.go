package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"

	"quat-trackball/internal/mathutil"
	"quat-trackball/internal/trackball"
)

// Config holds the viewport, drag script, interpolation keyframes and preview settings.
type Config struct {
	// Viewport
	ViewportWidth  float64 `json:"viewport_width"`
	ViewportHeight float64 `json:"viewport_height"`
	RadiusFraction float64 `json:"radius_fraction"` // trackball radius as a fraction of viewport height
	Projection     string  `json:"projection"`      // "sphere" or "hyperbolic"
	Origin         string  `json:"origin"`          // "top-left" or "bottom-left"

	// Scripted input
	Drags []Drag    `json:"drags"`
	Slerp Keyframes `json:"slerp"`

	// Preview settings
	OutputDir   string `json:"output_dir"`
	Texture     string `json:"texture"`
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
}

// Drag is one mouse drag in viewport pixels.
type Drag struct {
	Start [2]float64 `json:"start"`
	End   [2]float64 `json:"end"`
}

// Points returns the drag endpoints as trackball points.
func (d Drag) Points() (from, to trackball.Point) {
	return trackball.Point{X: d.Start[0], Y: d.Start[1]}, trackball.Point{X: d.End[0], Y: d.End[1]}
}

// Keyframes describes a SLERP between two orientations.
type Keyframes struct {
	From         Orientation `json:"from"`
	To           Orientation `json:"to"`
	Steps        int         `json:"steps"`
	ShortestPath *bool       `json:"shortest_path"` // nil = true
}

// Orientation is given either as quaternion components [w, x, y, z]
// or as XYZ Euler angles in degrees.
type Orientation struct {
	Quat     *[4]float64 `json:"quat,omitempty"`
	EulerDeg *[3]float64 `json:"euler_deg,omitempty"`
}

// UnmarshalJSON replaces the whole orientation so a file can switch between
// quat and euler_deg without inheriting the default.
func (o *Orientation) UnmarshalJSON(data []byte) error {
	type plain Orientation
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = Orientation(p)
	return nil
}

// Quaternion returns the configured orientation. An empty Orientation is the identity.
func (o Orientation) Quaternion() (mathutil.Quat, error) {
	switch {
	case o.Quat != nil && o.EulerDeg != nil:
		return mathutil.Quat{}, errors.New("config: orientation: set either quat or euler_deg, not both")
	case o.Quat != nil:
		q := mathutil.Quat(*o.Quat)
		if q.Norm() < mathutil.Epsilon {
			return mathutil.Quat{}, errors.New("config: orientation: zero quaternion")
		}
		return q, nil
	case o.EulerDeg != nil:
		e := *o.EulerDeg
		return mathutil.FromEuler(mathutil.Deg2Rad(e[0]), mathutil.Deg2Rad(e[1]), mathutil.Deg2Rad(e[2])), nil
	}
	return mathutil.Identity(), nil
}

// Default returns the configuration the demos run with when no file is given:
// the 960×540 viewport, two drags and the two SLERP keyframes.
func Default() Config {
	from := [4]float64{0.6438, 0.4378, 0.2916, 0.5558}
	to := [4]float64{0.2232, -0.4233, -0.3139, -0.8201}
	return Config{
		ViewportWidth:  960,
		ViewportHeight: 540,
		RadiusFraction: 0.5,
		Projection:     "hyperbolic",
		Origin:         "top-left",
		Drags: []Drag{
			{Start: [2]float64{384, 432}, End: [2]float64{653, 243}},
			{Start: [2]float64{355, 119}, End: [2]float64{317, 313}},
		},
		Slerp: Keyframes{
			From:  Orientation{Quat: &from},
			To:    Orientation{Quat: &to},
			Steps: 10,
		},
	}
}

// Load reads a JSON config file on top of Default.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir  string
	Texture    string
	Projection string
	Steps      int
	Size       int
	Workers    int
	LongPath   bool
}

// Resolve applies CLI overrides and fills in any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Projection != "" {
		c.Projection = flags.Projection
	}
	if flags.Steps > 0 {
		c.Slerp.Steps = flags.Steps
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LongPath {
		shortest := false
		c.Slerp.ShortestPath = &shortest
	}

	if c.ViewportWidth <= 0 {
		c.ViewportWidth = 960
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = 540
	}
	if c.RadiusFraction <= 0 {
		c.RadiusFraction = 0.5
	}
	if c.Projection == "" {
		c.Projection = "sphere"
	}
	if c.Origin == "" {
		c.Origin = "top-left"
	}
	if c.Slerp.Steps <= 0 {
		c.Slerp.Steps = 10
	}
	if c.Slerp.ShortestPath == nil {
		shortest := true
		c.Slerp.ShortestPath = &shortest
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if !finite(c.ViewportWidth) || !finite(c.ViewportHeight) || c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("config: viewport: %gx%g is not a valid size", c.ViewportWidth, c.ViewportHeight)
	}
	if !finite(c.RadiusFraction) || c.RadiusFraction <= 0 {
		return fmt.Errorf("config: radius_fraction: %g must be positive", c.RadiusFraction)
	}
	if _, err := ParseMode(c.Projection); err != nil {
		return err
	}
	if _, err := ParseOrigin(c.Origin); err != nil {
		return err
	}
	for i, d := range c.Drags {
		for _, v := range [4]float64{d.Start[0], d.Start[1], d.End[0], d.End[1]} {
			if !finite(v) {
				return fmt.Errorf("config: drags[%d]: coordinates must be finite", i)
			}
		}
	}
	if _, err := c.Slerp.From.Quaternion(); err != nil {
		return fmt.Errorf("config: slerp.from: %w", err)
	}
	if _, err := c.Slerp.To.Quaternion(); err != nil {
		return fmt.Errorf("config: slerp.to: %w", err)
	}
	if c.Supersample > 8 {
		return fmt.Errorf("config: supersample: %d exceeds 8", c.Supersample)
	}
	return nil
}

// Mapper builds the trackball for the configured viewport.
func (c Config) Mapper() (trackball.Mapper, error) {
	mode, err := ParseMode(c.Projection)
	if err != nil {
		return trackball.Mapper{}, err
	}
	origin, err := ParseOrigin(c.Origin)
	if err != nil {
		return trackball.Mapper{}, err
	}
	m := trackball.NewViewportMapper(c.ViewportWidth, c.ViewportHeight, c.RadiusFraction)
	m.Mode = mode
	m.Origin = origin
	return m, nil
}

// ShortestPathEnabled reports the resolved shortest-path flag (true when unset).
func (k Keyframes) ShortestPathEnabled() bool {
	return k.ShortestPath == nil || *k.ShortestPath
}

// ParseMode maps a projection name to a trackball mode.
func ParseMode(s string) (trackball.Mode, error) {
	switch strings.ToLower(s) {
	case "", "sphere":
		return trackball.ModeSphere, nil
	case "hyperbolic":
		return trackball.ModeHyperbolic, nil
	}
	return 0, fmt.Errorf("config: projection: unknown mode %q", s)
}

// ParseOrigin maps an origin name to a trackball origin.
func ParseOrigin(s string) (trackball.Origin, error) {
	switch strings.ToLower(s) {
	case "", "top-left":
		return trackball.OriginTopLeft, nil
	case "bottom-left":
		return trackball.OriginBottomLeft, nil
	}
	return 0, fmt.Errorf("config: origin: unknown origin %q", s)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
