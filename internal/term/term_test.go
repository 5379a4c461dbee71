package term

import (
	"context"
	"errors"
	"image/color"
	"math"
	"runtime"
	"testing"
	"time"

	"voxelspace/internal/app"
	"voxelspace/internal/camera"
	"voxelspace/internal/input"
	"voxelspace/internal/render"
	"voxelspace/internal/terrain"

	"github.com/gdamore/tcell/v2"
)

type recordedCell struct {
	r     rune
	style tcell.Style
}

type recorder struct {
	cells map[[2]int]recordedCell
}

func (r *recorder) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	r.cells[[2]int{x, y}] = recordedCell{r: primary, style: style}
}

func stripedFrame(t *testing.T, w, h int) *render.FrameBuffer {
	t.Helper()
	fb, err := render.NewFrameBuffer(w, h)
	if err != nil {
		t.Fatalf("NewFrameBuffer: %v", err)
	}
	fb.Clear(color.RGBA{R: 1, G: 2, B: 3, A: 255})
	// odd rows get packed color 0x00AABBCC -> bytes AA BB CC
	for x := 0; x < w; x++ {
		for y := 1; y < h; y += 2 {
			fb.WriteColumnSegment(x, y, y+1, 0x00AABBCC)
		}
	}
	return fb
}

func TestCellColors(t *testing.T) {
	fb := stripedFrame(t, 3, 4)
	top, bottom := cellColors(fb, 2, 1)
	if top != tcell.NewRGBColor(1, 2, 3) {
		t.Fatalf("top = %v, want rgb(1,2,3)", top)
	}
	if bottom != tcell.NewRGBColor(0xAA, 0xBB, 0xCC) {
		t.Fatalf("bottom = %v, want rgb(aa,bb,cc)", bottom)
	}
}

func TestCellColorsOddHeight(t *testing.T) {
	fb := stripedFrame(t, 2, 3)
	top, bottom := cellColors(fb, 0, 1)
	if top != bottom {
		t.Fatalf("last half cell should repeat its upper row: %v vs %v", top, bottom)
	}
}

func TestDrawFrameCoversGrid(t *testing.T) {
	fb := stripedFrame(t, 5, 7)
	rec := &recorder{cells: map[[2]int]recordedCell{}}
	drawFrame(rec, fb)
	if len(rec.cells) != 5*4 {
		t.Fatalf("wrote %d cells, want %d", len(rec.cells), 5*4)
	}
	for pos, c := range rec.cells {
		if c.r != upperHalfBlock {
			t.Fatalf("cell %v rune %q", pos, c.r)
		}
	}
}

func TestMouseStateEdges(t *testing.T) {
	g := input.NewGesture(3, 2)
	m := &mouseState{gesture: g}
	now := time.Unix(5, 0)

	m.update(tcell.Button1, 40, 80, now)
	if !g.Active() || g.Control().Speed != 3 {
		t.Fatalf("left press: %+v", g.Control())
	}
	m.update(tcell.Button1, 60, 80, now)
	if got := g.Control().Turn; got != -0.5 {
		t.Fatalf("drag turn = %v, want -0.5", got)
	}
	m.update(tcell.ButtonNone, 60, 80, now)
	if g.Active() {
		t.Fatal("release did not end the gesture")
	}

	m.update(tcell.Button2, 10, 80, now)
	if g.Control().Speed != -3 {
		t.Fatalf("right press speed = %v, want -3", g.Control().Speed)
	}
}

func simPresenter(t *testing.T) (*Presenter, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(8, 4)
	return &Presenter{screen: sim}, sim
}

func simLoop(t *testing.T) *app.Loop {
	t.Helper()
	store, err := terrain.Open(context.Background(), terrain.Options{Width: 16, Height: 16, Seed: 1})
	if err != nil {
		t.Fatalf("terrain: %v", err)
	}
	fb, err := render.NewFrameBuffer(8, 8)
	if err != nil {
		t.Fatalf("framebuffer: %v", err)
	}
	cam := &camera.Camera{X: 8, Y: 8, EyeHeight: 100, TurnGain: 0.1, TimeScale: 0.03}
	view := render.View{Horizon: 4, ScaleHeight: 10, Distance: 20, FOV: math.Pi / 2}
	return app.NewLoop(store, cam, fb, view, render.RGB(0x000000))
}

func TestRunQuitsOnKey(t *testing.T) {
	p, sim := simPresenter(t)
	defer sim.Fini()
	loop := simLoop(t)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	errc := make(chan error, 1)
	go func() { errc <- Run(context.Background(), p, loop, input.NewGesture(3, 2), 60) }()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
}

func TestRunReleasesEventReader(t *testing.T) {
	p, sim := simPresenter(t)
	defer sim.Fini()
	loop := simLoop(t)
	baseline := runtime.NumGoroutine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, p, loop, input.NewGesture(3, 2), 60); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	// Events keep arriving after Run returns; the reader must drop out
	// instead of blocking on a channel nobody drains.
	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > baseline {
		if time.Now().After(deadline) {
			t.Fatalf("event reader still running: %d goroutines, baseline %d", runtime.NumGoroutine(), baseline)
		}
		_ = sim.PostEvent(tcell.NewEventInterrupt(nil))
		time.Sleep(time.Millisecond)
	}
}
