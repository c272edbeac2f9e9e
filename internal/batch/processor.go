// Package batch renders orientation sequences to WebP frames with a worker pool.
package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"quat-trackball/internal/mathutil"
	"quat-trackball/internal/postprocess"
	"quat-trackball/internal/raster"
	"quat-trackball/internal/texture"

	"github.com/HugoSmits86/nativewebp"
)

// Frame is one orientation to render.
type Frame struct {
	Name        string
	Orientation mathutil.Quat
}

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Texture     string
	Textures    texture.Resolver
	RenderSize  int
	Supersample int
	Workers     int
	Progress    io.Writer
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Name    string
	Path    string
	Success bool
	Error   string
}

// Run renders all frames using a worker pool. Results are in frame order.
func Run(cfg Config, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	var tex *image.NRGBA
	if cfg.Textures != nil {
		tex = cfg.Textures.Resolve(cfg.Texture)
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, tex, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, tex *image.NRGBA, frame Frame) Result {
	outPath := filepath.Join(cfg.OutputDir, frame.Name+".webp")
	fail := func(err error) Result {
		return Result{Name: frame.Name, Path: outPath, Error: err.Error()}
	}

	img, err := raster.RenderGlobe(frame.Orientation, tex, cfg.RenderSize, cfg.Supersample)
	if err != nil {
		return fail(err)
	}

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fail(err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fail(err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fail(fmt.Errorf("WebP encode: %w", err))
	}

	return Result{Name: frame.Name, Path: outPath, Success: true}
}
