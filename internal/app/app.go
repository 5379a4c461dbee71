//go:build ebiten

package app

import (
	"time"

	"voxelspace/internal/input"
	"voxelspace/internal/logger"
	"voxelspace/internal/render"
	"voxelspace/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Game adapts the frame loop to the ebiten.Game interface.
type Game struct {
	loop    *Loop
	gesture *input.Gesture
	hud     *ui.HUD
	meter   *FPSMeter

	img      *ebiten.Image
	maxWidth int
	touch    ebiten.TouchID
	touching bool
}

// New constructs a Game around a ready frame loop.
func New(loop *Loop, gesture *input.Gesture, maxWidth int, showFPS bool) *Game {
	g := &Game{
		loop:     loop,
		gesture:  gesture,
		meter:    NewFPSMeter(FPSWindow),
		maxWidth: maxWidth,
	}
	if showFPS {
		g.hud = ui.NewHUD()
	}
	return g
}

// Update reads input and renders the next frame into the framebuffer.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if name, err := SaveScreenshot(g.loop.FrameBuffer(), ScreenshotDir); err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
		} else {
			logger.Info("screenshot saved", zap.String("path", name))
		}
	}

	now := time.Now()
	g.handlePointer(now)

	fb := g.loop.Tick(now, g.gesture.Control())
	if g.meter.Observe(now, g.loop.Frames()) {
		logger.Debug("fps", zap.Float64("fps", g.meter.FPS()))
	}
	g.upload(fb)
	return nil
}

func (g *Game) handlePointer(now time.Time) {
	width := float64(g.loop.FrameBuffer().Width())

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, _ := ebiten.CursorPosition()
		g.gesture.Press(input.ButtonPrimary, float64(x), now)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		x, _ := ebiten.CursorPosition()
		g.gesture.Press(input.ButtonSecondary, float64(x), now)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.gesture.Release()
	}

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 && !g.touching {
		g.touch, g.touching = ids[0], true
		x, _ := ebiten.TouchPosition(g.touch)
		g.gesture.Press(input.ButtonPrimary, float64(x), now)
	}
	if g.touching && inpututil.IsTouchJustReleased(g.touch) {
		g.touching = false
		g.gesture.Release()
	}

	if g.touching {
		x, _ := ebiten.TouchPosition(g.touch)
		g.gesture.Move(float64(x), width)
	} else if g.gesture.Active() {
		x, _ := ebiten.CursorPosition()
		g.gesture.Move(float64(x), width)
	}
}

func (g *Game) upload(fb *render.FrameBuffer) {
	size := fb.Size()
	if g.img == nil || g.img.Bounds().Dx() != size.W || g.img.Bounds().Dy() != size.H {
		if g.img != nil {
			g.img.Dispose()
		}
		g.img = ebiten.NewImage(size.W, size.H)
	}
	g.img.WritePixels(fb.Pixels())
}

// Draw presents the most recent frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		return
	}
	screen.DrawImage(g.img, nil)
	if g.hud != nil {
		g.hud.Draw(screen, g.meter.FPS(), g.loop.Camera())
	}
}

// Layout sizes the framebuffer from the window and returns it as the
// logical screen size. The new size takes effect on the next tick.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := Viewport(outsideWidth, outsideHeight, g.maxWidth)
	if err := g.loop.Resize(w, h); err != nil {
		size := g.loop.FrameBuffer().Size()
		return size.W, size.H
	}
	return w, h
}
