// Package pipeline composes the raster and edge packages into the
// photo-to-coloring-page conversion and owns its two-phase cache split.
//
// Phase 1 (Prepare) runs once per source image: decode, grayscale,
// Gaussian blur, Sobel gradients and non-maximum suppression. Its result,
// the Cache, is immutable and holds the suppressed magnitude field plus a
// display copy of the original.
//
// Phase 2 (Render and friends) runs on every control change against the
// cached field: threshold estimation, hysteresis tracing, dilation and
// rasterization. It is a pure function — cheap enough to re-run per slider
// pause, and byte-for-byte deterministic for identical inputs, so callers
// may freely discard superseded results.
//
// Render does not validate the Settings ranges; callers clamp slider
// values with Settings.Clamp before invoking it.
package pipeline
