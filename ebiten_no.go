//go:build gtxt

package textbox

// The gtxt build tag strips the Ebitengine dependency from textbox.
// Without Ebitengine there's no ToEbitenImage(); grab the pixels with
// [raster.Canvas.Image]() and encode or draw them yourself.
