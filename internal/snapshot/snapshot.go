// Package snapshot renders the simulation without a window and writes the
// two views as PNG files.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"coriolis-view/internal/app"
	"coriolis-view/internal/config"
	"coriolis-view/pkg/render"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	TopFile       = "top.png"
	FrontFile     = "front.png"
	CompositeFile = "composite.png"
)

// Options control a headless run. LaunchAt < 0 never launches.
type Options struct {
	Frames    int
	DeltaTime float64
	LaunchAt  int
	Size      int
	OutDir    string
}

// Result describes the final frame and the files written.
type Result struct {
	Stats app.Stats
	Time  float64
	Files []string
}

func (o Options) validate() error {
	if o.Frames <= 0 {
		return errors.New("frames must be positive")
	}
	if o.DeltaTime <= 0 {
		return errors.New("dt must be positive")
	}
	if o.Size <= 0 {
		return errors.New("size must be positive")
	}
	if o.OutDir == "" {
		return errors.New("output directory is required")
	}
	return nil
}

// Run steps a fresh simulation Frames times and writes the last frame.
func Run(ctx context.Context, sc config.SimulationConfig, opts Options, logger *zap.Logger) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot options: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("snapshot")

	size := float64(opts.Size)
	sim := app.NewSimulation(sc, size, size, logger)
	top := render.NewRasterSurface(opts.Size, opts.Size, nil)
	front := render.NewRasterSurface(opts.Size, opts.Size, nil)

	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i == opts.LaunchAt && !sim.Launch() {
			logger.Warn("launch refused", zap.Int("frame", i))
		}
		sim.Step(opts.DeltaTime, top, front)
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	outputs := map[string]image.Image{
		TopFile:       top.Image(),
		FrontFile:     front.Image(),
		CompositeFile: sideBySide(top.Image(), front.Image()),
	}
	files := make([]string, 0, len(outputs))
	g, gctx := errgroup.WithContext(ctx)
	for name, img := range outputs {
		path := filepath.Join(opts.OutDir, name)
		files = append(files, path)
		g.Go(func() error {
			return writePNG(gctx, path, img)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("snapshot written",
		zap.String("dir", opts.OutDir),
		zap.Int("frames", opts.Frames),
		zap.Float64("t", sim.World.Time))
	return &Result{Stats: *sim.Stats, Time: sim.World.Time, Files: files}, nil
}

func sideBySide(left, right *image.RGBA) *image.RGBA {
	lb, rb := left.Bounds(), right.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), max(lb.Dy(), rb.Dy())))
	draw.Draw(out, lb, left, lb.Min, draw.Src)
	draw.Draw(out, rb.Add(image.Pt(lb.Dx(), 0)), right, rb.Min, draw.Src)
	return out
}

func writePNG(ctx context.Context, path string, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
