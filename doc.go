// textbox is a package that renders a block of text onto a raster image:
// you give it a string, a font, a target width and a few styling properties,
// and you get back a pixel canvas with the text word-wrapped inside it.
//
// Common usage only requires a [Renderer] and a font:
//   fnt, _, err := font.ParseFromPath("path/to/font.ttf")
//   if err != nil { ... }
//
//   renderer := textbox.NewRenderer()
//   renderer.SetFont(fnt)
//   renderer.SetText("The quick brown fox jumps over the lazy dog.")
//   renderer.SetWidth(400)
//   renderer.SetFontSize(18)
//
//   canvas, err := renderer.Render()
//   if err != nil { ... }
//   defer canvas.Close()
//   // canvas.Image() is ready to encode or composite
//
// There are two rendering modes:
//  - Paragraph mode: you set an explicit font size and the text is
//    greedily word-wrapped against the width budget.
//  - Headline mode: you leave the font size unset (zero) and the whole
//    text is laid out as a single line whose font size is derived so
//    that it spans the target width almost exactly.
//
// All measuring and pixel work is delegated to a [raster.Rasterizer];
// the default one draws through golang.org/x/image. Renderers are not
// safe for concurrent use: give each goroutine its own.
package textbox
