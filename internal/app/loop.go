package app

import (
	"fmt"
	"image/color"
	"time"

	"voxelspace/internal/camera"
	"voxelspace/internal/core"
	"voxelspace/internal/logger"
	"voxelspace/internal/render"

	"go.uber.org/zap"
)

// Loop owns all per-frame state and runs one frame per Tick, in order:
// count, clear, integrate, render. The caller presents the returned buffer.
type Loop struct {
	terrain render.Sampler
	cam     *camera.Camera
	fb      *render.FrameBuffer
	view    render.View
	bg      color.RGBA

	clock  core.Clock
	frames uint64

	pending core.Size
}

// NewLoop wires a loaded terrain, a camera and a framebuffer together.
func NewLoop(terrain render.Sampler, cam *camera.Camera, fb *render.FrameBuffer, view render.View, bg color.RGBA) *Loop {
	return &Loop{terrain: terrain, cam: cam, fb: fb, view: view, bg: bg}
}

// Tick renders one frame at wall-clock time now under the given control.
func (l *Loop) Tick(now time.Time, ctl camera.Control) *render.FrameBuffer {
	l.applyResize()

	l.frames++
	l.fb.Clear(l.bg)
	l.cam.Integrate(ctl, l.clock.Elapsed(now, ctl.Start))
	render.Render(l.fb, l.terrain, l.cam, l.view)
	return l.fb
}

// Resize validates new framebuffer dimensions and schedules them for the
// start of the next tick, so a frame is never rendered at two sizes.
func (l *Loop) Resize(w, h int) error {
	size := core.Size{W: w, H: h}
	if !size.Valid() {
		return fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, w, h)
	}
	if size == l.fb.Size() {
		l.pending = core.Size{}
		return nil
	}
	l.pending = size
	return nil
}

func (l *Loop) applyResize() {
	if !l.pending.Valid() {
		return
	}
	size := l.pending
	l.pending = core.Size{}
	if err := l.fb.Resize(size.W, size.H); err != nil {
		logger.Warn("framebuffer resize rejected", zap.Error(err))
		return
	}
	logger.Debug("framebuffer resized", zap.Int("width", size.W), zap.Int("height", size.H))
}

// Frames returns the number of ticks run so far.
func (l *Loop) Frames() uint64 { return l.frames }

// FrameBuffer returns the surface the loop renders into.
func (l *Loop) FrameBuffer() *render.FrameBuffer { return l.fb }

// Camera returns the camera the loop integrates.
func (l *Loop) Camera() *camera.Camera { return l.cam }
