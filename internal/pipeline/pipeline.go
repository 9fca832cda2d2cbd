package pipeline

import (
	"context"
	"image"

	"github.com/colorbook-app/lineart/internal/edge"
	"github.com/colorbook-app/lineart/internal/raster"
)

// BlurSigma is the fixed strength of the noise-suppression blur applied
// before gradient computation.
const BlurSigma = 1.4

// Settings are the two user-facing controls of the converter.
type Settings struct {
	// Sensitivity selects the hysteresis threshold percentile, 1-100.
	// Higher values retain more, fainter edges.
	Sensitivity int

	// Thickness selects the dilation round count, 1-5. Higher values
	// yield bolder lines; 1 leaves the traced mask untouched.
	Thickness int
}

// Clamp returns a copy of s with both controls forced into their valid
// ranges. Render assumes in-range values, so UI code clamps raw slider
// input through here before rendering.
func (s Settings) Clamp() Settings {
	if s.Sensitivity < 1 {
		s.Sensitivity = 1
	} else if s.Sensitivity > 100 {
		s.Sensitivity = 100
	}
	if s.Thickness < 1 {
		s.Thickness = 1
	} else if s.Thickness > 5 {
		s.Thickness = 5
	}
	return s
}

// Prepare runs Phase 1 on raw image bytes: decode (with downscaling to
// processing resolution), grayscale conversion, Gaussian blur, Sobel
// gradients and non-maximum suppression. It also builds the preview copy
// of the original.
//
// On failure — a *raster.DecodeError for undecodable bytes, or the
// context's error if ctx is done before the numeric stages start — no
// Cache is created, so prior session state is never left half-replaced.
func Prepare(ctx context.Context, data []byte) (*Cache, error) {
	img, err := raster.Decode(data)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	gray := raster.Grayscale(img)
	blurred := edge.GaussianBlur(gray, width, height, BlurSigma)
	mag, dir := edge.Sobel(blurred, width, height)
	suppressed := edge.SuppressNonMax(mag, dir, width, height)

	return &Cache{
		suppressed: suppressed,
		width:      width,
		height:     height,
		preview:    raster.Preview(img),
	}, nil
}

// Render runs Phase 2 against a prepared cache and returns the rendered
// coloring page: black lines on a white background, alpha 255.
//
// Render is pure and deterministic; identical cache and settings always
// produce a byte-identical image. It has no failure path over a
// well-formed cache and in-range settings.
func Render(c *Cache, s Settings) *image.NRGBA {
	return raster.Binary(RenderMask(c, s), c.width, c.height)
}

// RenderMask runs Phase 2 up to (and including) dilation, returning the
// binary edge mask at processing resolution. Overlay rendering consumes
// this directly; Render wraps it into the final raster.
func RenderMask(c *Cache, s Settings) []uint8 {
	low, high := edge.EstimateThresholds(c.suppressed, s.Sensitivity)
	mask := edge.TraceHysteresis(c.suppressed, c.width, c.height, low, high)
	return edge.Dilate(mask, c.width, c.height, s.Thickness)
}

// RenderPreview renders and encodes with the fast lossy preview encoding,
// used on every interactive settings change.
func RenderPreview(c *Cache, s Settings) ([]byte, error) {
	return raster.EncodeJPEG(Render(c, s))
}

// RenderExport renders and encodes losslessly, used once per explicit
// download. The pixel content is identical to RenderPreview for the same
// cache and settings; only the encoding differs.
func RenderExport(c *Cache, s Settings) ([]byte, error) {
	return raster.EncodePNG(Render(c, s))
}
