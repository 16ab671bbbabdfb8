package render

import "image/color"

// FillRGBA copies straight-alpha pixels into buf as premultiplied RGBA bytes,
// the layout ebiten expects. It reports false when the sizes disagree.
func FillRGBA(buf []byte, pixels []color.NRGBA) bool {
	if len(buf) != 4*len(pixels) {
		return false
	}
	for i, px := range pixels {
		base := i * 4
		if px.A == 0xff {
			buf[base+0] = px.R
			buf[base+1] = px.G
			buf[base+2] = px.B
			buf[base+3] = px.A
			continue
		}
		r, g, b, a := px.RGBA()
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
	return true
}

// clearRGBA resets buf to transparent black.
func clearRGBA(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
