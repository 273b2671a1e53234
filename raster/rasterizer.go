package raster

import "image"
import "image/color"
import "errors"

import "golang.org/x/image/font/sfnt"

// An error wrapping every failure originating in a rasterizer: fonts
// that can't be shaped at the requested size, unsupported parameters,
// operations on released canvases and so on. Match with [errors.Is]().
var ErrRasterizer = errors.New("rasterizer error")

// A Canvas is a pixel buffer that a [Rasterizer] can measure and draw
// text into. Canvases must be released through [Canvas.Close]() once
// no longer needed; any operation on a closed canvas fails.
//
// Canvases are not safe for concurrent use.
type Canvas interface {
	// Returns the pixel bounds of the canvas.
	Bounds() image.Rectangle

	// Fills the whole canvas with the given color, replacing any
	// previous content (including alpha).
	Fill(clr color.Color) error

	// Returns the bounding [Box] of the given text as it would be
	// rendered at the given font, size and angle. Nothing is drawn.
	MeasureText(fnt *sfnt.Font, size float64, angle float64, text string) (Box, error)

	// Draws the given text with the baseline origin at (x, y).
	DrawText(fnt *sfnt.Font, size float64, angle float64, x, y int, clr color.Color, text string) error

	// Exposes the canvas pixels. The returned image remains owned by
	// the canvas and must not be used after [Canvas.Close]().
	Image() image.Image

	// Releases the canvas. Further operations will fail with
	// [ErrRasterizer]. Closing twice is harmless.
	Close() error
}

// A Rasterizer allocates the canvases that textbox renderers measure
// and draw through. See [Source] for the default implementation.
type Rasterizer interface {
	NewCanvas(width, height int) (Canvas, error)
}
