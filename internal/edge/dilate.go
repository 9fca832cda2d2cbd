package edge

// Dilate grows the binary mask by thickness-1 rounds of morphological
// dilation with a full 3x3 (8-connected) structuring element: each round,
// every set pixel paints itself and all in-bounds neighbors into the next
// buffer, widening lines by one pixel of radius.
//
// thickness 1 is a no-op and returns the input slice unchanged.
func Dilate(mask []uint8, width, height, thickness int) []uint8 {
	if thickness <= 1 {
		return mask
	}

	cur := mask
	for round := 0; round < thickness-1; round++ {
		next := make([]uint8, len(cur))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if cur[y*width+x] == 0 {
					continue
				}
				for dy := -1; dy <= 1; dy++ {
					ny := y + dy
					if ny < 0 || ny >= height {
						continue
					}
					for dx := -1; dx <= 1; dx++ {
						nx := x + dx
						if nx < 0 || nx >= width {
							continue
						}
						next[ny*width+nx] = 1
					}
				}
			}
		}
		cur = next
	}

	return cur
}
