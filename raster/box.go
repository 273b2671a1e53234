package raster

import "image"

// A Box is the bounding quad a rasterizer reports for a measured text
// string: the four corners of the smallest rectangle covering every
// rendered glyph, in pixels, relative to the drawing origin (the dot).
//
// The dot sits on the text baseline, so the upper corners usually have
// negative Y values (the ascending portion of the glyphs) while the
// lower corners have positive ones (the descending portion).
type Box struct {
	LowerLeft  image.Point
	LowerRight image.Point
	UpperRight image.Point
	UpperLeft  image.Point
}

// Returns the horizontal extent of the box, in pixels.
func (self Box) Width() int { return self.LowerRight.X - self.LowerLeft.X }

// Returns the vertical extent of the box, in pixels.
func (self Box) Height() int { return self.LowerLeft.Y - self.UpperLeft.Y }

// Returns the vertical distance between the text baseline and the
// bottom edge of the box, in pixels. Typically a small positive value
// accounting for glyph descenders.
func (self Box) BaselineOffset() int { return self.LowerLeft.Y }

// Returns the horizontal distance between the drawing origin and the
// left edge of the box, in pixels. Some glyphs start slightly before
// or after the origin; this is the correction needed to visually pin
// the text to a target x coordinate.
func (self Box) LeftBearing() int { return self.LowerLeft.X }
