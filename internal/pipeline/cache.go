package pipeline

import "image"

// Cache holds the Phase-1 result for one source image: everything the
// pipeline computes that does not depend on the user controls.
//
// A Cache is immutable once Prepare returns it. Phase-2 renders only read
// it, so any number of renders may run against the same Cache, and
// switching to a new source image simply drops the old Cache and prepares
// a fresh one.
type Cache struct {
	suppressed []float64
	width      int
	height     int
	preview    *image.NRGBA
}

// Width returns the processing-resolution width in pixels.
func (c *Cache) Width() int { return c.width }

// Height returns the processing-resolution height in pixels.
func (c *Cache) Height() int { return c.height }

// Preview returns the display copy of the original built during Prepare,
// for side-by-side comparison with rendered results.
func (c *Cache) Preview() *image.NRGBA { return c.preview }
