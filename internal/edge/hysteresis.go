package edge

// Pixel classes assigned by double thresholding.
const (
	classNone uint8 = iota
	classWeak
	classStrong
)

// TraceHysteresis confirms edges by double threshold and connectivity.
//
// Pixels with magnitude >= high are strong; those in [low, high) are weak;
// the rest are none. A breadth-first search seeded at every strong pixel
// expands through 8-connected neighbors, absorbing unclaimed weak pixels
// and continuing from them. The returned mask holds 1 for retained edges
// (strong, or weak chained to strong) and 0 for everything else; weak
// pixels with no path to a strong seed are discarded as noise.
func TraceHysteresis(suppressed []float64, width, height int, low, high float64) []uint8 {
	mask := make([]uint8, width*height)
	if high <= 0 {
		return mask
	}

	class := make([]uint8, width*height)
	queue := make([]int, 0, width+height)
	for i, m := range suppressed {
		if m >= high {
			class[i] = classStrong
			mask[i] = 1
			queue = append(queue, i)
		} else if m >= low {
			class[i] = classWeak
		}
	}

	for head := 0; head < len(queue); head++ {
		i := queue[head]
		x := i % width
		y := i / width
		for dy := -1; dy <= 1; dy++ {
			ny := y + dy
			if ny < 0 || ny >= height {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx := x + dx
				if nx < 0 || nx >= width {
					continue
				}
				j := ny*width + nx
				if mask[j] == 0 && class[j] == classWeak {
					mask[j] = 1
					queue = append(queue, j)
				}
			}
		}
	}

	return mask
}
