package textbox

import "errors"

// Errors returned by renderer configuration and build operations.
// All of them are sentinel values meant to be matched with [errors.Is]();
// the concrete messages wrap them with extra detail.
//
// Rasterizer failures are reported as [raster.ErrRasterizer] (aliased
// here as [ErrRasterizer]) and font file failures as [font.ErrUnreadable].
var (
	// A color string or channel tuple couldn't be interpreted.
	// See [ParseHex]() and [Channels]().
	ErrInvalidColorFormat = errors.New("invalid color format")

	// An alignment value outside the declared [Align] constants, or an
	// alignment the layout stage can't position (see [Justify]).
	ErrInvalidAlignment = errors.New("invalid alignment")

	// A build was attempted without text, width or font, or with a
	// configuration that leaves no horizontal space for the text.
	ErrMissingConfig = errors.New("missing configuration")
)
