package app

import (
	"context"
	"fmt"

	"voxelspace/internal/camera"
	"voxelspace/internal/config"
	"voxelspace/internal/input"
	"voxelspace/internal/logger"
	"voxelspace/internal/render"
	"voxelspace/internal/terrain"

	"go.uber.org/zap"
)

// Viewport returns the framebuffer size for a display of w*h: the width is
// capped at maxWidth and the height keeps the display's aspect ratio.
func Viewport(w, h, maxWidth int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	fw := w
	if maxWidth > 0 && fw > maxWidth {
		fw = maxWidth
	}
	fh := fw * h / w
	return fw, max(1, fh)
}

// Build loads the terrain and constructs the frame loop and the gesture
// tracker that feeds it. The terrain is fully loaded before Build returns.
func Build(ctx context.Context, cfg *config.Config) (*Loop, *input.Gesture, error) {
	store, err := terrain.Open(ctx, terrain.Options{
		Width:     cfg.Terrain.Width,
		Height:    cfg.Terrain.Height,
		HeightMap: cfg.Terrain.HeightMap,
		ColorMap:  cfg.Terrain.ColorMap,
		Seed:      cfg.Terrain.Seed,
	})
	if err != nil {
		return nil, nil, err
	}

	w, h := Viewport(cfg.Graphics.Width, cfg.Graphics.Height, cfg.Graphics.MaxWidth)
	fb, err := render.NewFrameBuffer(w, h)
	if err != nil {
		return nil, nil, fmt.Errorf("framebuffer: %w", err)
	}

	cam := &camera.Camera{
		X:         cfg.Camera.X,
		Y:         cfg.Camera.Y,
		Heading:   cfg.Camera.Heading,
		EyeHeight: cfg.Camera.EyeHeight,
		TurnGain:  cfg.Camera.TurnGain,
		TimeScale: cfg.Camera.TimeScale,
	}
	view := render.View{
		Horizon:     cfg.View.Horizon,
		ScaleHeight: cfg.View.ScaleHeight,
		Distance:    cfg.View.Distance,
		FOV:         cfg.View.FOV,
	}
	logger.Info("frame loop ready",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("distance", view.Distance))

	loop := NewLoop(store, cam, fb, view, render.RGB(cfg.View.Background))
	return loop, input.NewGesture(cfg.Camera.Speed, cfg.Camera.TurnFactor), nil
}
