package edge

import (
	"math"
	"testing"
)

// spreadField returns a suppressed-magnitude field with a wide spread of
// values, the shape threshold estimation sees on a real photograph.
func spreadField() []float64 {
	field := make([]float64, 1000)
	for i := range field {
		if i%3 == 0 {
			continue // leave a third at zero, like suppressed shoulders
		}
		field[i] = float64(i%100) + 1
	}
	return field
}

func TestEstimateThresholds_UniformInput(t *testing.T) {
	field := make([]float64, 400)

	low, high := EstimateThresholds(field, 50)

	if low != 0 || high != 0 {
		t.Errorf("all-zero field: got (%v, %v), want (0, 0)", low, high)
	}
}

func TestEstimateThresholds_LowHighRatio(t *testing.T) {
	field := spreadField()

	for _, sensitivity := range []int{1, 25, 50, 75, 100} {
		low, high := EstimateThresholds(field, sensitivity)
		if high <= 0 {
			t.Fatalf("sensitivity %d: high threshold should be positive", sensitivity)
		}
		if math.Abs(low-0.4*high) > 1e-12 {
			t.Errorf("sensitivity %d: low=%v, want 0.4*high=%v", sensitivity, low, 0.4*high)
		}
	}
}

func TestEstimateThresholds_MonotonicSensitivity(t *testing.T) {
	field := spreadField()

	prevHigh := math.Inf(1)
	prevKept := -1
	for sensitivity := 1; sensitivity <= 100; sensitivity++ {
		low, high := EstimateThresholds(field, sensitivity)

		if high > prevHigh {
			t.Fatalf("sensitivity %d: high threshold rose from %v to %v", sensitivity, prevHigh, high)
		}
		prevHigh = high

		// More sensitivity must never retain fewer candidate pixels.
		kept := 0
		for _, m := range field {
			if m > 0 && m >= low {
				kept++
			}
		}
		if kept < prevKept {
			t.Fatalf("sensitivity %d: kept count fell from %d to %d", sensitivity, prevKept, kept)
		}
		prevKept = kept
	}
}

func TestEstimateThresholds_Extremes(t *testing.T) {
	field := spreadField()

	lowStrict, highStrict := EstimateThresholds(field, 1)
	lowLoose, highLoose := EstimateThresholds(field, 100)

	if highStrict <= highLoose {
		t.Errorf("sensitivity 1 high (%v) should exceed sensitivity 100 high (%v)", highStrict, highLoose)
	}

	countAbove := func(threshold float64) int {
		n := 0
		for _, m := range field {
			if m > 0 && m >= threshold {
				n++
			}
		}
		return n
	}
	if countAbove(lowStrict) >= countAbove(lowLoose) {
		t.Error("sensitivity 1 should admit far fewer pixels than sensitivity 100")
	}
}

func TestEstimateThresholds_SingleValueField(t *testing.T) {
	field := make([]float64, 100)
	for i := 0; i < 50; i++ {
		field[i] = 42
	}

	low, high := EstimateThresholds(field, 50)

	// Every nonzero magnitude lands in the top bin, whose upper bound
	// rescales back to the maximum itself.
	if math.Abs(high-42) > 1e-9 {
		t.Errorf("high: got %v, want 42", high)
	}
	if math.Abs(low-0.4*42) > 1e-9 {
		t.Errorf("low: got %v, want %v", low, 0.4*42)
	}
}
