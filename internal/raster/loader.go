package raster

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
)

// MaxDimension caps the processing resolution. Inputs whose larger side
// exceeds it are downscaled on load so pipeline cost stays bounded.
const MaxDimension = 1500

// DecodeError reports input bytes that could not be interpreted as a
// supported raster image. Callers typically surface it as an "unsupported
// format" message rather than retrying.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode image: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// Decode decodes PNG, JPEG or GIF bytes into an NRGBA image at processing
// resolution.
//
// If max(width, height) exceeds MaxDimension the image is downscaled with
// Lanczos resampling, preserving aspect ratio; a 3000x2000 upload becomes
// 1500x1000. The input slice is never modified.
//
// Returns a *DecodeError if the bytes are not a decodable raster.
func Decode(data []byte) (*image.NRGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		return imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos), nil
	}
	return imaging.Clone(img), nil
}
