package edge

import "math"

// Sobel computes per-pixel gradient magnitude and direction using the
// standard 3x3 Sobel kernels:
//
//	Gx:  -1  0  1      Gy:  -1 -2 -1
//	     -2  0  2            0  0  0
//	     -1  0  1            1  2  1
//
// Only interior pixels are computed; the 1-pixel border on all sides keeps
// zero magnitude and direction because the 3x3 neighborhood would run off
// the buffer there. magnitude = sqrt(gx²+gy²), direction = atan2(gy, gx)
// in radians.
func Sobel(src []float64, width, height int) (mag, dir []float64) {
	mag = make([]float64, len(src))
	dir = make([]float64, len(src))
	if width < 3 || height < 3 {
		return mag, dir
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := y*width + x
			up := i - width
			down := i + width

			gx := src[up+1] - src[up-1] +
				2*(src[i+1]-src[i-1]) +
				src[down+1] - src[down-1]
			gy := src[down-1] - src[up-1] +
				2*(src[down]-src[up]) +
				src[down+1] - src[up+1]

			mag[i] = math.Sqrt(gx*gx + gy*gy)
			dir[i] = math.Atan2(gy, gx)
		}
	}

	return mag, dir
}
