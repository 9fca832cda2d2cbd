package raster

import "image"

// Grayscale reduces an image to a flat, row-major luma buffer using the
// ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B). Alpha is ignored.
// The result has exactly width*height elements, index = y*width + x.
func Grayscale(img image.Image) []float64 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	out := make([]float64, width*height)

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				i := nrgba.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				out[y*width+x] = 0.299*float64(nrgba.Pix[i]) +
					0.587*float64(nrgba.Pix[i+1]) +
					0.114*float64(nrgba.Pix[i+2])
			}
		}
		return out
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out[y*width+x] = 0.299*float64(r>>8) +
				0.587*float64(g>>8) +
				0.114*float64(b>>8)
		}
	}
	return out
}
