package raster

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// previewQuality is the JPEG quality used for live previews. Moderate on
// purpose: previews are regenerated on every slider pause and only the
// final PNG download needs to be lossless.
const previewQuality = 85

// EncodePNG encodes an image losslessly for download.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeJPEG encodes an image with the moderate-quality settings used for
// live previews.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(previewQuality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
