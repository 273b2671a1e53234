// raster defines the collaborator contract that the main textbox package
// relies on for all pixel-level work: canvas allocation, text measuring
// and glyph drawing. It also provides [Source], the default implementation,
// which draws through golang.org/x/image.
//
// Most users never interact with this package beyond the finished canvases
// returned by textbox renderers. Implementing your own [Rasterizer] is only
// necessary when targeting an unusual pixel backend.
package raster
