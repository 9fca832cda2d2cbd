// Package raster handles everything at the pixel-buffer boundary of the
// pipeline: decoding uploads into a bounded-resolution image, reducing
// images to flat luma buffers, rendering the final binary mask back to an
// image, and encoding results for preview or download.
//
// Decoding supports PNG, JPEG and GIF. Inputs larger than MaxDimension on
// either side are downscaled on load, preserving aspect ratio, so the
// processing cost of the edge pipeline stays bounded regardless of what the
// user uploads.
//
// Two encodings are offered for the same rendered raster: a lossy JPEG for
// the live preview shown while the user drags the sliders, and a lossless
// PNG for the final download. Both consume the identical mask, so the
// preview and the downloaded page differ only in compression artifacts.
package raster
