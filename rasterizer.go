package textbox

import "github.com/hexlike/textbox/raster"

// Aliases for the collaborator types defined in [textbox/raster], so
// common workflows don't need a second import.
//
// [textbox/raster]: https://pkg.go.dev/github.com/hexlike/textbox/raster
type Rasterizer = raster.Rasterizer
type Canvas = raster.Canvas
type Box = raster.Box

// Alias for [raster.ErrRasterizer].
var ErrRasterizer = raster.ErrRasterizer

// Measures text through a throwaway 1x1 canvas. Every layout decision
// funnels through here: the canvas exists only to satisfy the rasterizer
// contract and is released before the metrics are used, on both the
// success and the failure path.
//
// Results must not be cached across different font sizes.
func measure(rast Rasterizer, fnt *Font, size float64, text string) (Box, error) {
	canvas, err := rast.NewCanvas(1, 1)
	if err != nil { return Box{}, err }
	defer canvas.Close()
	return canvas.MeasureText(fnt, size, 0, text)
}
