package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"quat-trackball/internal/batch"
	"quat-trackball/internal/config"
	"quat-trackball/internal/mathutil"
	"quat-trackball/internal/texture"
	"quat-trackball/internal/trackball"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	tex := flag.String("texture", "", "Equirectangular globe texture (.tga, .png, .jpg)")
	size := flag.Int("size", 0, "Output frame size in pixels (default: 256)")
	steps := flag.Int("steps", 0, "SLERP steps (default: 10)")
	substeps := flag.Int("substeps", 8, "Frames rendered per drag")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	longPath := flag.Bool("long", false, "Interpolate along the long arc")
	only := flag.String("only", "", "Render only drag or slerp frames")

	flag.Parse()

	// Load config
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Texture:   *tex,
		Steps:     *steps,
		Size:      *size,
		Workers:   *workers,
		LongPath:  *longPath,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frames, err := buildFrames(cfg, *only, *substeps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(frames) == 0 {
		fmt.Println("No frames to render.")
		os.Exit(0)
	}

	texCache := texture.NewCache()
	if cfg.Texture != "" {
		if texCache.Resolve(cfg.Texture) == nil {
			fmt.Fprintf(os.Stderr, "Warning: texture: %v (using procedural globe)\n", texCache.Err(cfg.Texture))
		} else {
			fmt.Printf("Texture: %s\n", cfg.Texture)
		}
	}

	// Print summary
	fmt.Println("Trackball orientation preview → WebP")
	fmt.Printf("Frames: %d, Size: %dpx (%dx supersample), Workers: %d\n", len(frames), cfg.RenderSize, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Texture:     cfg.Texture,
		Textures:    texCache,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Progress:    os.Stdout,
	}, frames)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(frames))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "frames.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, frames); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// buildFrames collects the drag replay and the SLERP sweep from the config.
func buildFrames(cfg config.Config, only string, substeps int) ([]batch.Frame, error) {
	var frames []batch.Frame

	if only == "" || only == "drag" {
		m, err := cfg.Mapper()
		if err != nil {
			return nil, err
		}
		drags := make([][2]trackball.Point, len(cfg.Drags))
		for i, d := range cfg.Drags {
			drags[i][0], drags[i][1] = d.Points()
		}
		dragFrames, err := batch.DragFrames(m, mathutil.Identity(), drags, substeps)
		if err != nil {
			return nil, err
		}
		frames = append(frames, dragFrames...)
	}

	if only == "" || only == "slerp" {
		from, err := cfg.Slerp.From.Quaternion()
		if err != nil {
			return nil, err
		}
		to, err := cfg.Slerp.To.Quaternion()
		if err != nil {
			return nil, err
		}
		slerpFrames, err := batch.SlerpFrames(from, to, cfg.Slerp.Steps, cfg.Slerp.ShortestPathEnabled())
		if err != nil {
			return nil, err
		}
		frames = append(frames, slerpFrames...)
	}

	if only != "" && only != "drag" && only != "slerp" {
		return nil, fmt.Errorf("-only: unknown value %q", only)
	}
	return frames, nil
}
