package edge

import (
	"math"
	"testing"
)

func TestSobel_VerticalStep(t *testing.T) {
	width, height := 20, 20
	src := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 10; x < width; x++ {
			src[y*width+x] = 100
		}
	}

	mag, dir := Sobel(src, width, height)

	// The step between columns 9 and 10 must dominate the field.
	i := 10*width + 9
	if mag[i] == 0 {
		t.Fatal("no gradient at the step")
	}
	if mag[10*width+2] != 0 {
		t.Error("flat region far from the step should have zero magnitude")
	}

	// Gradient points along +x, so direction is ~0.
	if math.Abs(dir[i]) > 1e-9 {
		t.Errorf("direction at vertical step: got %v, want 0", dir[i])
	}
}

func TestSobel_HorizontalStep(t *testing.T) {
	width, height := 20, 20
	src := make([]float64, width*height)
	for y := 10; y < height; y++ {
		for x := 0; x < width; x++ {
			src[y*width+x] = 100
		}
	}

	mag, dir := Sobel(src, width, height)

	i := 9*width + 10
	if mag[i] == 0 {
		t.Fatal("no gradient at the step")
	}
	if math.Abs(dir[i]-math.Pi/2) > 1e-9 {
		t.Errorf("direction at horizontal step: got %v, want %v", dir[i], math.Pi/2)
	}
}

func TestSobel_BorderStaysZero(t *testing.T) {
	width, height := 12, 9
	src := make([]float64, width*height)
	for i := range src {
		// Strong texture everywhere so any border leakage would show.
		src[i] = float64((i * 37) % 251)
	}

	mag, dir := Sobel(src, width, height)

	for x := 0; x < width; x++ {
		for _, y := range []int{0, height - 1} {
			i := y*width + x
			if mag[i] != 0 || dir[i] != 0 {
				t.Fatalf("border pixel (%d,%d) has nonzero gradient", x, y)
			}
		}
	}
	for y := 0; y < height; y++ {
		for _, x := range []int{0, width - 1} {
			i := y*width + x
			if mag[i] != 0 || dir[i] != 0 {
				t.Fatalf("border pixel (%d,%d) has nonzero gradient", x, y)
			}
		}
	}
}

func TestSobel_TinyImage(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 5}, {5, 2}} {
		width, height := dims[0], dims[1]
		src := make([]float64, width*height)
		for i := range src {
			src[i] = float64(i)
		}

		mag, dir := Sobel(src, width, height)
		if len(mag) != width*height || len(dir) != width*height {
			t.Fatalf("%dx%d: wrong output size", width, height)
		}
		for i := range mag {
			if mag[i] != 0 || dir[i] != 0 {
				t.Fatalf("%dx%d: expected all-zero gradient, got nonzero at %d", width, height, i)
			}
		}
	}
}
