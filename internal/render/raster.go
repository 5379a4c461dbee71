package render

import (
	"math"

	"voxelspace/internal/camera"
)

// Sampler answers wrapped terrain queries.
type Sampler interface {
	SampleHeight(x, y int) uint8
	SampleColor(x, y int) uint32
}

// View holds the projection parameters for one frame.
type View struct {
	Horizon     float64 // screen row of the horizon
	ScaleHeight float64 // vertical scale applied after perspective division
	Distance    int     // sampling stops before this distance
	FOV         float64 // radians spanned by the frame's columns
}

// Render casts one ray per framebuffer column and paints the visible slice
// of every distance step, nearest first. A column's cursor only ever moves
// up, so a farther sample can never paint over a nearer one. fb must have
// been cleared for this frame.
func Render(fb *FrameBuffer, t Sampler, cam *camera.Camera, v View) {
	w := fb.Width()
	for i := 0; i < w; i++ {
		angle := cam.Heading - v.FOV/2 + v.FOV*float64(i)/float64(w)
		sin, cos := math.Sincos(angle)

		cursor := fb.horizon[i]
		for z := 1; z < v.Distance && cursor > 0; z++ {
			fz := float64(z)
			sx := int(cam.X + cos*fz)
			sy := int(cam.Y + sin*fz)

			screenY := (cam.EyeHeight-float64(t.SampleHeight(sx, sy)))/fz*v.ScaleHeight + v.Horizon
			if screenY >= float64(cursor) {
				continue
			}
			y := max(0, int(screenY))
			fb.WriteColumnSegment(i, y, cursor, t.SampleColor(sx, sy))
			cursor = y
		}
		fb.horizon[i] = cursor
	}
}
