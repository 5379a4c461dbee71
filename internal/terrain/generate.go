package terrain

import (
	"math"

	"voxelspace/internal/core"
	rng "voxelspace/pkg/core"
)

type band struct {
	top     uint8
	r, g, b uint8
}

// Display channels are read back with red and blue exchanged, so the band
// colors below are listed as they appear on screen and swapped on write.
var bands = []band{
	{top: 60, r: 28, g: 64, b: 120},
	{top: 72, r: 194, g: 178, b: 128},
	{top: 150, r: 72, g: 118, b: 52},
	{top: 205, r: 110, g: 98, b: 86},
	{top: 255, r: 235, g: 235, b: 240},
}

// Generate builds a tileable fractal value-noise map and returns it as a
// pair of raw RGBA sources ready for Store.Load.
func Generate(w, h int, seed int64) (height, color []byte) {
	field := fractalNoise(w, h, seed)
	height = make([]byte, w*h*BytesPerTexel)
	color = make([]byte, w*h*BytesPerTexel)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			v := uint8(math.Round(field[i] * 255))
			base := i * BytesPerTexel
			height[base+0] = v
			height[base+1] = v
			height[base+2] = v
			height[base+3] = 0xFF

			// Light from the west: brighten slopes facing it.
			west := field[y*w+core.Wrap(x-1, w)]
			shade := 1 + (field[i]-west)*6
			b := bandFor(v)
			color[base+0] = scale(b.b, shade)
			color[base+1] = scale(b.g, shade)
			color[base+2] = scale(b.r, shade)
			color[base+3] = 0xFF
		}
	}
	return height, color
}

func bandFor(v uint8) band {
	for _, b := range bands {
		if v <= b.top {
			return b
		}
	}
	return bands[len(bands)-1]
}

func scale(c uint8, f float64) uint8 {
	return uint8(math.Max(0, math.Min(255, float64(c)*f)))
}

// fractalNoise sums octaves of smoothed lattice noise. Each lattice is
// stretched to span the map exactly and wraps at the edges, so the result
// tiles like the map itself. Values lie in [0, 1].
func fractalNoise(w, h int, seed int64) []float64 {
	out := make([]float64, w*h)
	src := rng.NewRNG(seed).Source()

	cell := max(w, h) / 4
	amp, total := 1.0, 0.0
	for cell >= 2 {
		gw := max(1, (w+cell-1)/cell)
		gh := max(1, (h+cell-1)/cell)
		lattice := make([]float64, gw*gh)
		rng.FillUnit(src, lattice)

		for y := 0; y < h; y++ {
			fy := float64(y) * float64(gh) / float64(h)
			y0 := int(fy)
			ty := smooth(fy - float64(y0))
			for x := 0; x < w; x++ {
				fx := float64(x) * float64(gw) / float64(w)
				x0 := int(fx)
				tx := smooth(fx - float64(x0))

				a := lattice[core.Wrap(y0, gh)*gw+core.Wrap(x0, gw)]
				b := lattice[core.Wrap(y0, gh)*gw+core.Wrap(x0+1, gw)]
				c := lattice[core.Wrap(y0+1, gh)*gw+core.Wrap(x0, gw)]
				d := lattice[core.Wrap(y0+1, gh)*gw+core.Wrap(x0+1, gw)]
				top := a + (b-a)*tx
				bottom := c + (d-c)*tx
				out[y*w+x] += (top + (bottom-top)*ty) * amp
			}
		}
		total += amp
		amp *= 0.5
		cell /= 2
	}

	if total == 0 {
		return out
	}
	for i := range out {
		out[i] /= total
	}
	return out
}

func smooth(t float64) float64 { return t * t * (3 - 2*t) }
