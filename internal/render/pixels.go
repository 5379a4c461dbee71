package render

import "image/color"

// fillRGBA writes c into every pixel of buf.
func fillRGBA(buf []byte, c color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// putPacked writes a packed terrain color at buf[base:base+4]. Bits 16-23
// land in the first byte and bits 0-7 in the third; alpha is always opaque.
func putPacked(buf []byte, base int, col uint32) {
	buf[base+0] = uint8(col >> 16)
	buf[base+1] = uint8(col >> 8)
	buf[base+2] = uint8(col)
	buf[base+3] = 0xFF
}

// RGB converts a 0xRRGGBB value into an opaque color.
func RGB(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}
