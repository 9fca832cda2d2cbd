package edge

const (
	// histogramBins is the resolution of the magnitude histogram used to
	// derive thresholds.
	histogramBins = 256

	// lowHighRatio is the fixed ratio between the low and high hysteresis
	// thresholds. Preserved exactly for output compatibility.
	lowHighRatio = 0.4
)

// EstimateThresholds derives the hysteresis cut points from the suppressed
// magnitude field and the sensitivity control.
//
// Sensitivity ranges over [1, 100]; higher values keep more, fainter edges.
// It maps to a target percentile of the nonzero-magnitude distribution:
//
//	percentile = 1 - (sensitivity/100) * 0.9
//
// so sensitivity 1 targets the 99.1st percentile (only the strongest edges)
// and sensitivity 100 the 10th (nearly everything with any gradient). A
// 256-bin histogram of the nonzero magnitudes, normalized by the observed
// maximum, is walked cumulatively until the target count is reached; that
// bin's upper bound rescaled to magnitude units is the high threshold, and
// low is always 0.4 * high.
//
// A field with no nonzero magnitudes (a uniform source image) yields (0, 0);
// hysteresis then finds nothing and the output is all white.
func EstimateThresholds(suppressed []float64, sensitivity int) (low, high float64) {
	var maxMag float64
	total := 0
	for _, m := range suppressed {
		if m > 0 {
			total++
			if m > maxMag {
				maxMag = m
			}
		}
	}
	if total == 0 {
		return 0, 0
	}

	hist := make([]int, histogramBins)
	for _, m := range suppressed {
		if m == 0 {
			continue
		}
		bin := int(m / maxMag * histogramBins)
		if bin >= histogramBins {
			bin = histogramBins - 1
		}
		hist[bin]++
	}

	percentile := 1 - float64(sensitivity)/100*0.9
	target := percentile * float64(total)

	highBin := histogramBins - 1
	cumulative := 0
	for b := 0; b < histogramBins; b++ {
		cumulative += hist[b]
		if float64(cumulative) >= target {
			highBin = b
			break
		}
	}

	high = float64(highBin+1) / histogramBins * maxMag
	low = lowHighRatio * high
	return low, high
}
