package app

import "time"

// FPSWindow is how often the frame rate is resampled.
const FPSWindow = 500 * time.Millisecond

// FPSMeter turns a monotonically increasing frame counter into a frame rate
// sampled over fixed windows.
type FPSMeter struct {
	window time.Duration
	start  time.Time
	frames uint64
	fps    float64
}

// NewFPSMeter returns a meter that resamples every window.
func NewFPSMeter(window time.Duration) *FPSMeter {
	if window <= 0 {
		window = FPSWindow
	}
	return &FPSMeter{window: window}
}

// Observe records the counter at time now. It reports true when a new
// sample was taken.
func (m *FPSMeter) Observe(now time.Time, frames uint64) bool {
	if m.start.IsZero() {
		m.start, m.frames = now, frames
		return false
	}
	elapsed := now.Sub(m.start)
	if elapsed < m.window {
		return false
	}
	m.fps = float64(frames-m.frames) / elapsed.Seconds()
	m.start, m.frames = now, frames
	return true
}

// FPS returns the most recent sample.
func (m *FPSMeter) FPS() float64 { return m.fps }
