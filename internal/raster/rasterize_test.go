package raster

import "testing"

func TestBinary(t *testing.T) {
	width, height := 4, 3
	mask := make([]uint8, width*height)
	mask[0] = 1
	mask[1*width+2] = 1

	img := Binary(mask, width, height)

	if img.Bounds().Dx() != width || img.Bounds().Dy() != height {
		t.Fatalf("dimensions: got %dx%d, want %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), width, height)
	}

	for i, v := range mask {
		o := i * 4
		r, g, b, a := img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3]
		if a != 255 {
			t.Fatalf("pixel %d: alpha %d, want 255", i, a)
		}
		if v != 0 {
			if r != 0 || g != 0 || b != 0 {
				t.Fatalf("pixel %d: set mask should be black, got (%d,%d,%d)", i, r, g, b)
			}
		} else if r != 255 || g != 255 || b != 255 {
			t.Fatalf("pixel %d: clear mask should be white, got (%d,%d,%d)", i, r, g, b)
		}
	}
}

func TestBinary_EmptyMaskIsAllWhite(t *testing.T) {
	mask := make([]uint8, 5*5)
	img := Binary(mask, 5, 5)

	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 || img.Pix[i+1] != 255 || img.Pix[i+2] != 255 || img.Pix[i+3] != 255 {
			t.Fatalf("pixel %d not opaque white", i/4)
		}
	}
}
