package edge

import "math"

// SuppressNonMax thins multi-pixel gradient ridges to single-pixel edges.
//
// For each interior pixel with nonzero magnitude, the gradient direction is
// quantized into one of four orientations (0°, 45°, 90°, 135°; a direction
// and its opposite select the same orientation, so angles are folded into
// [0°, 180°)). The pixel's magnitude is compared against its two neighbors
// along that orientation and kept only if it is >= both; otherwise it is
// zeroed. Ties count as local maxima so perfectly flat ridges do not open
// gaps.
func SuppressNonMax(mag, dir []float64, width, height int) []float64 {
	out := make([]float64, len(mag))
	if width < 3 || height < 3 {
		return out
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := y*width + x
			m := mag[i]
			if m == 0 {
				continue
			}

			angle := dir[i] * 180 / math.Pi
			if angle < 0 {
				angle += 180
			}

			var n1, n2 float64
			switch {
			case angle < 22.5 || angle >= 157.5:
				// Horizontal gradient: compare left/right
				n1 = mag[i-1]
				n2 = mag[i+1]
			case angle < 67.5:
				n1 = mag[i+width+1]
				n2 = mag[i-width-1]
			case angle < 112.5:
				// Vertical gradient: compare above/below
				n1 = mag[i-width]
				n2 = mag[i+width]
			default:
				n1 = mag[i+width-1]
				n2 = mag[i-width+1]
			}

			if m >= n1 && m >= n2 {
				out[i] = m
			}
		}
	}

	return out
}
