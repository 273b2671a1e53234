//go:build !gtxt

package textbox

import "github.com/hajimehoshi/ebiten/v2"

// Converts a finished canvas into a GPU-backed Ebitengine image, ready
// to be drawn on screen. The canvas must still be open; call this
// before [raster.Canvas.Close](), not after.
//
// This function is only available when compiling with Ebitengine
// support. Compile with '-tags gtxt' to strip the dependency if you
// only need CPU-side images.
func ToEbitenImage(canvas Canvas) *ebiten.Image {
	return ebiten.NewImageFromImage(canvas.Image())
}
