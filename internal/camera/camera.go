// Package camera integrates the first-person viewpoint from a control signal.
package camera

import (
	"math"
	"time"
)

// Control is the movement signal produced by the input layer.
type Control struct {
	Speed  float64   // forward speed, negative reverses
	Turn   float64   // heading change per unit time
	Active bool      // a gesture is engaged
	Start  time.Time // when the current gesture began
}

// Camera is the viewpoint in terrain space. X and Y are unbounded; the
// terrain wraps them when sampling.
type Camera struct {
	X, Y      float64
	Heading   float64 // radians, not normalized
	EyeHeight float64

	TurnGain  float64
	TimeScale float64
}

// Integrate advances the camera by dtMillis of wall-clock time. Heading is
// updated first and the new heading drives the translation of the same tick.
func (c *Camera) Integrate(ctl Control, dtMillis float64) {
	if !ctl.Active {
		return
	}
	dt := dtMillis * c.TimeScale
	c.Heading -= ctl.Turn * c.TurnGain * dt
	sin, cos := math.Sincos(c.Heading)
	c.X += ctl.Speed * cos * dt
	c.Y += ctl.Speed * sin * dt
}

// NormalizedHeading returns the heading folded into [0, 2π).
func (c *Camera) NormalizedHeading() float64 {
	h := math.Mod(c.Heading, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h
}
