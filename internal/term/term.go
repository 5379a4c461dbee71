// Package term presents frames in a terminal using half-block cells: each
// cell shows two framebuffer rows, the upper as foreground of '▀' and the
// lower as background.
package term

import (
	"context"
	"time"

	"voxelspace/internal/app"
	"voxelspace/internal/input"
	"voxelspace/internal/logger"
	"voxelspace/internal/render"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const upperHalfBlock = '▀'

// cellWriter is the part of tcell.Screen the presenter draws through.
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Presenter owns the terminal screen.
type Presenter struct {
	screen tcell.Screen
}

// New initializes the terminal and enables mouse reporting.
func New() (*Presenter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &Presenter{screen: screen}, nil
}

// FrameSize returns the framebuffer size the terminal can show.
func (p *Presenter) FrameSize() (int, int) {
	cols, rows := p.screen.Size()
	return cols, rows * 2
}

// Present draws fb and flushes it to the terminal.
func (p *Presenter) Present(fb *render.FrameBuffer) {
	drawFrame(p.screen, fb)
	p.screen.Show()
}

// Close restores the terminal.
func (p *Presenter) Close() {
	p.screen.Fini()
}

func drawFrame(w cellWriter, fb *render.FrameBuffer) {
	size := fb.Size()
	for y := 0; y*2 < size.H; y++ {
		for x := 0; x < size.W; x++ {
			top, bottom := cellColors(fb, x, y)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			w.SetContent(x, y, upperHalfBlock, nil, style)
		}
	}
}

// cellColors returns the colors of framebuffer rows 2*cy and 2*cy+1 in
// column x. An odd final row repeats the upper color.
func cellColors(fb *render.FrameBuffer, x, cy int) (top, bottom tcell.Color) {
	pix := fb.Pixels()
	stride := fb.Width() * 4
	upper := 2*cy*stride + x*4
	lower := upper
	if 2*cy+1 < fb.Height() {
		lower += stride
	}
	top = tcell.NewRGBColor(int32(pix[upper]), int32(pix[upper+1]), int32(pix[upper+2]))
	bottom = tcell.NewRGBColor(int32(pix[lower]), int32(pix[lower+1]), int32(pix[lower+2]))
	return top, bottom
}

// Run drives the frame loop until ctx is cancelled or the user quits. Input
// events are handled on the loop goroutine, between ticks.
func Run(ctx context.Context, p *Presenter, loop *app.Loop, gesture *input.Gesture, fpsLimit int) error {
	if fpsLimit <= 0 {
		fpsLimit = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fpsLimit))
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	if w, h := p.FrameSize(); w > 0 && h > 0 {
		if err := loop.Resize(w, h); err != nil {
			return err
		}
	}

	meter := app.NewFPSMeter(app.FPSWindow)
	mouse := &mouseState{gesture: gesture}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !handleEvent(ev, p, loop, mouse) {
				return nil
			}

		case now := <-ticker.C:
			fb := loop.Tick(now, gesture.Control())
			p.Present(fb)
			if meter.Observe(now, loop.Frames()) {
				logger.Debug("fps", zap.Float64("fps", meter.FPS()))
			}
		}
	}
}

// handleEvent reports false when the user asked to quit.
func handleEvent(ev tcell.Event, p *Presenter, loop *app.Loop, mouse *mouseState) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}

	case *tcell.EventMouse:
		x, _ := ev.Position()
		mouse.update(ev.Buttons(), float64(x), float64(loop.FrameBuffer().Width()), ev.When())

	case *tcell.EventResize:
		p.screen.Sync()
		w, h := p.FrameSize()
		if err := loop.Resize(w, h); err != nil {
			logger.Warn("ignoring terminal resize", zap.Error(err))
		}
	}
	return true
}

// mouseState converts tcell's button bitmasks into press and release edges.
type mouseState struct {
	gesture *input.Gesture
	held    bool
}

func (m *mouseState) update(buttons tcell.ButtonMask, x, width float64, now time.Time) {
	switch {
	case !m.held && buttons&tcell.Button1 != 0:
		m.held = true
		m.gesture.Press(input.ButtonPrimary, x, now)
	case !m.held && buttons&tcell.Button2 != 0:
		m.held = true
		m.gesture.Press(input.ButtonSecondary, x, now)
	case m.held && buttons&(tcell.Button1|tcell.Button2) == 0:
		m.held = false
		m.gesture.Release()
	case m.held:
		m.gesture.Move(x, width)
	}
}
