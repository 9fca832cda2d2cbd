package raster

import "image"

// Binary renders a 0/1 edge mask as a black-line-on-white coloring page.
// Mask value 1 becomes RGB (0,0,0), value 0 becomes (255,255,255); alpha is
// always 255. The mask must hold exactly width*height elements.
func Binary(mask []uint8, width, height int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, v := range mask {
		o := i * 4
		c := uint8(255)
		if v != 0 {
			c = 0
		}
		out.Pix[o] = c
		out.Pix[o+1] = c
		out.Pix[o+2] = c
		out.Pix[o+3] = 255
	}
	return out
}
