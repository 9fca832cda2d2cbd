package raster

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultOverlayColor is the tint used for detected lines in the
// comparison view when no explicit color is chosen.
const DefaultOverlayColor = "#2563EB"

// overlayOpacity controls how strongly the tint replaces the underlying
// photo pixel on line positions.
const overlayOpacity = 0.8

// Overlay draws the traced edge mask over the preview copy so the user can
// judge which photo features became lines before downloading.
//
// The mask is at processing resolution and is scaled to the preview size
// with nearest-neighbor sampling so lines stay hard-edged. hexColor selects
// the line tint ("#RRGGBB"); unparsable values fall back to
// DefaultOverlayColor. Tinting blends in Lab space, which keeps the tint
// perceptually even across light and dark photo regions.
func Overlay(preview *image.NRGBA, mask []uint8, width, height int, hexColor string) *image.NRGBA {
	tint, err := colorful.Hex(hexColor)
	if err != nil {
		tint, _ = colorful.Hex(DefaultOverlayColor)
	}

	lines := imaging.Resize(Binary(mask, width, height),
		preview.Bounds().Dx(), preview.Bounds().Dy(), imaging.NearestNeighbor)

	out := imaging.Clone(preview)
	w := out.Bounds().Dx()
	h := out.Bounds().Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			li := lines.PixOffset(x, y)
			if lines.Pix[li] != 0 {
				// White in the rendered mask means no line here.
				continue
			}
			o := out.PixOffset(x, y)
			base := colorful.Color{
				R: float64(out.Pix[o]) / 255,
				G: float64(out.Pix[o+1]) / 255,
				B: float64(out.Pix[o+2]) / 255,
			}
			r, g, b := base.BlendLab(tint, overlayOpacity).Clamped().RGB255()
			out.Pix[o] = r
			out.Pix[o+1] = g
			out.Pix[o+2] = b
		}
	}
	return out
}
