package batch

import (
	"fmt"

	"quat-trackball/internal/mathutil"
	"quat-trackball/internal/trackball"
)

// SlerpFrames samples steps+1 orientations from a to b at t = i/steps.
func SlerpFrames(a, b mathutil.Quat, steps int, shortestPath bool) ([]Frame, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("batch: slerp frames: steps %d must be positive", steps)
	}
	frames := make([]Frame, 0, steps+1)
	for i := 0; i <= steps; i++ {
		q, err := a.Slerp(b, float64(i)/float64(steps), shortestPath)
		if err != nil {
			return nil, fmt.Errorf("batch: slerp frames: %w", err)
		}
		frames = append(frames, Frame{Name: fmt.Sprintf("slerp_%03d", i), Orientation: q})
	}
	return frames, nil
}

// DragFrames replays cursor drags starting from start. Each drag is split into
// substeps cursor positions along the straight line between its endpoints; every
// position yields a frame rotated relative to the orientation at drag start.
// The first frame is start itself.
func DragFrames(m trackball.Mapper, start mathutil.Quat, drags [][2]trackball.Point, substeps int) ([]Frame, error) {
	if substeps < 1 {
		substeps = 1
	}
	frames := []Frame{{Name: "drag_000", Orientation: start}}
	orientation := start
	for i, d := range drags {
		from, to := d[0], d[1]
		var q mathutil.Quat
		for s := 1; s <= substeps; s++ {
			t := float64(s) / float64(substeps)
			p := trackball.Point{X: from.X + (to.X-from.X)*t, Y: from.Y + (to.Y-from.Y)*t}
			var err error
			q, err = m.Drag(orientation, from, p)
			if err != nil {
				return nil, fmt.Errorf("batch: drag %d: %w", i, err)
			}
			frames = append(frames, Frame{Name: fmt.Sprintf("drag_%03d", len(frames)), Orientation: q})
		}
		orientation = q
	}
	return frames, nil
}
