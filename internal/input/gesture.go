// Package input turns pointer and touch gestures into a camera control signal.
package input

import (
	"time"

	"voxelspace/internal/camera"
)

// Button identifies which pointer button began a gesture.
type Button int

const (
	// ButtonPrimary drives forward (left mouse button, touch).
	ButtonPrimary Button = iota
	// ButtonSecondary drives in reverse (right mouse button).
	ButtonSecondary
)

// Gesture tracks one press-drag-release interaction.
type Gesture struct {
	speed      float64
	turnFactor float64

	ctl    camera.Control
	startX float64
}

// NewGesture returns a gesture tracker. speed is the forward magnitude and
// turnFactor scales horizontal drag, as a fraction of viewport width, into a
// turn rate.
func NewGesture(speed, turnFactor float64) *Gesture {
	return &Gesture{speed: speed, turnFactor: turnFactor}
}

// Press begins a gesture at pointer column x.
func (g *Gesture) Press(b Button, x float64, now time.Time) {
	speed := g.speed
	if b == ButtonSecondary {
		speed = -g.speed
	}
	g.ctl = camera.Control{Speed: speed, Active: true, Start: now}
	g.startX = x
}

// Move updates the turn rate from the drag distance since the press.
// Dragging right yields a negative turn rate, which turns the camera left.
func (g *Gesture) Move(x, viewportWidth float64) {
	if !g.ctl.Active || g.ctl.Speed == 0 || viewportWidth <= 0 {
		return
	}
	g.ctl.Turn = (g.startX - x) / viewportWidth * g.turnFactor
}

// Release ends the gesture.
func (g *Gesture) Release() {
	g.ctl = camera.Control{}
}

// Active reports whether a gesture is in progress.
func (g *Gesture) Active() bool { return g.ctl.Active }

// Control returns the current signal as a single value.
func (g *Gesture) Control() camera.Control { return g.ctl }
