package batch

import (
	"encoding/json"
	"os"

	"quat-trackball/internal/mathutil"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Name       string     `json:"name"`
	Image      string     `json:"image"`
	Quaternion [4]float64 `json:"quaternion"`
	Axis       [3]float64 `json:"axis"`
	AngleDeg   float64    `json:"angle_deg"`
}

// WriteManifest writes frames.json describing every frame's orientation.
func WriteManifest(path string, frames []Frame) error {
	entries := make([]ManifestEntry, len(frames))
	for i, f := range frames {
		axis, angle := f.Orientation.ToAxisAngle()
		entries[i] = ManifestEntry{
			Name:       f.Name,
			Image:      f.Name + ".webp",
			Quaternion: f.Orientation,
			Axis:       axis,
			AngleDeg:   mathutil.Rad2Deg(angle),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
