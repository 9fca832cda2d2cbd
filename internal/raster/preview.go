package raster

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// previewMaxDimension caps the display copy of the original. It is a
// display concern only and independent of the processing resolution.
const previewMaxDimension = 800

// Preview builds the display copy of the source image shown next to the
// rendered result. The copy is downscaled to at most previewMaxDimension on
// its larger side and mildly sharpened so the comparison view stays crisp
// at display size.
func Preview(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	var display image.Image = img
	if bounds.Dx() > previewMaxDimension || bounds.Dy() > previewMaxDimension {
		display = imaging.Fit(img, previewMaxDimension, previewMaxDimension, imaging.Lanczos)
	}
	return imaging.Clone(effect.Sharpen(display))
}
