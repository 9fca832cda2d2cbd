package edge

import "math"

// GaussianBlur smooths a grayscale buffer with a separable Gaussian kernel.
//
// The 1-D kernel has radius ceil(3*sigma) and is normalized to sum 1; it is
// applied as a horizontal pass followed by a vertical pass. Out-of-bounds
// sample coordinates clamp to the nearest valid row/column (edge replication)
// so borders keep their brightness instead of bleeding toward zero.
//
// The input buffer is not modified; a new buffer of the same size is returned.
func GaussianBlur(src []float64, width, height int, sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	kernel := gaussianKernel(sigma, radius)

	tmp := make([]float64, len(src))
	dst := make([]float64, len(src))

	// Horizontal pass
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sx := clamp(x+k, 0, width-1)
				sum += src[row+sx] * kernel[k+radius]
			}
			tmp[row+x] = sum
		}
	}

	// Vertical pass
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sy := clamp(y+k, 0, height-1)
				sum += tmp[sy*width+x] * kernel[k+radius]
			}
			dst[row+x] = sum
		}
	}

	return dst
}

// gaussianKernel builds a normalized 1-D Gaussian kernel of the given radius.
func gaussianKernel(sigma float64, radius int) []float64 {
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution passes.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
