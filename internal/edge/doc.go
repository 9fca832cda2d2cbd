// Package edge implements the Canny-style edge detection stages that turn
// a photograph into a coloring-book line mask.
//
// All stages operate on flat, row-major buffers (index = y*width + x) at a
// fixed processing resolution; no stage ever resizes its input. The stages
// compose into two phases:
//
//	Phase 1 (per image):   GaussianBlur -> Sobel -> SuppressNonMax
//	Phase 2 (per control change): EstimateThresholds -> TraceHysteresis -> Dilate
//
// Phase 1 is the expensive part and its result (the suppressed magnitude
// field) is cached by the pipeline package; Phase 2 is cheap enough to
// re-run on every slider movement.
//
// # Boundary Handling
//
// GaussianBlur replicates edge samples so borders are not artificially
// darkened. Sobel and SuppressNonMax skip the outermost 1-pixel ring
// entirely: the ring keeps zero magnitude and direction and is never
// treated as an edge.
//
// # Determinism
//
// Every function here is a pure function of its arguments. The same buffer
// and parameters always produce an identical result, which is what makes
// caching Phase 1 safe and slider re-renders reproducible.
package edge
