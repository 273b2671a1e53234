package textbox

import "image/color"
import "fmt"

import "github.com/hexlike/textbox/font"
import "github.com/hexlike/textbox/raster"

// This file contains the Renderer type definition and all the getter
// and setter methods. Actual layout and drawing operations are split
// in other files.

// Default value for the headline reference scale. See
// [Renderer.SetHeadlineScale]().
const DefaultHeadlineScale = 1000

// The [Renderer] is the heart of textbox: a single mutable configuration
// object that you fill in through setters and then consume through
// [Renderer.Render]() or [Renderer.Layout]().
//
// Text, width and font are mandatory. Everything else has defaults:
// transparent background, white text, left alignment, no padding and
// headline mode (font size unset).
//
// Renderers are not safe for concurrent use; concurrent builds must
// use independent instances.
type Renderer struct {
	rast Rasterizer
	fnt *Font
	text string
	width int
	fontSize float64
	padTop, padRight, padBottom, padLeft int
	align Align
	background color.Color
	textColor color.Color
	lineHeight int
	lineOffset int
	headlineScale float64
	initialized bool

	// metrics resolved by the most recent successful layout,
	// kept for post-build introspection
	lastLayout *Layout
}

// Creates a new [Renderer] with default properties.
func NewRenderer() *Renderer {
	renderer := &Renderer{}
	renderer.initDefaults()
	return renderer
}

// The zero value of a Renderer is usable too, so every entry point
// that touches defaulted fields funnels through here first.
func (self *Renderer) initDefaults() {
	if self.initialized { return }
	self.background = color.NRGBA{0, 0, 0, 0} // fully transparent black
	self.textColor = color.NRGBA{255, 255, 255, 255}
	self.align = Left
	self.headlineScale = DefaultHeadlineScale
	self.initialized = true
}

// Sets the text to be rendered. Words are the wrapping unit: any run of
// whitespace separates two words, and non-breaking spaces (U+00A0) are
// collapsed to regular spaces before splitting.
func (self *Renderer) SetText(text string) {
	self.text = text
	self.lastLayout = nil
}

// Returns the currently configured text.
func (self *Renderer) GetText() string { return self.text }

// Sets the target width of the output canvas, in pixels. The width
// must be positive; together with the side paddings it determines the
// inner width every line is wrapped or fitted against.
func (self *Renderer) SetWidth(width int) {
	if width < 0 { panic("width can't be negative") }
	self.width = width
	self.lastLayout = nil
}

// Returns the currently configured target width.
func (self *Renderer) GetWidth() int { return self.width }

// Sets the font to be used on subsequent operations. Without a font,
// a renderer is fundamentally useless, so don't forget to set this up.
//
// If you only have a font filepath, see [Renderer.SetFontFromPath]().
func (self *Renderer) SetFont(fnt *Font) {
	self.fnt = fnt
	self.lastLayout = nil
}

// Parses the font at the given path and sets it on the renderer.
// Failures are reported at set time, wrapping [font.ErrUnreadable],
// so a bad path never reaches the layout stage.
func (self *Renderer) SetFontFromPath(path string) error {
	fnt, _, err := font.ParseFromPath(path)
	if err != nil { return err }
	self.fnt = fnt
	self.lastLayout = nil
	return nil
}

// Returns the current font. The font is nil by default.
func (self *Renderer) GetFont() *Font { return self.fnt }

// Sets the font size, in pixels. A size of zero (the default) selects
// headline mode: the text is laid out as a single line whose size is
// derived to span the inner width. Any positive size selects paragraph
// mode with greedy word wrapping.
func (self *Renderer) SetFontSize(size float64) {
	if size < 0 { panic("font size can't be negative") }
	self.fontSize = size
	self.lastLayout = nil
}

// Returns the effective font size: after a successful build this is
// the size actually used (the fitted size in headline mode), otherwise
// the configured one (zero in headline mode). Changing any
// layout-affecting property resets the getter to the configured value
// until the next build.
func (self *Renderer) GetFontSize() float64 {
	if self.lastLayout != nil { return self.lastLayout.FontSize }
	return self.fontSize
}

// Sets the canvas padding, in pixels, with CSS shorthand semantics:
//  - 1 value: all four sides.
//  - 2 values: top/bottom, left/right.
//  - 3 values: top, left/right, bottom.
//  - 4 values: top, right, bottom, left.
// Any other number of values, or any negative value, panics.
func (self *Renderer) SetPadding(values ...int) {
	for _, value := range values {
		if value < 0 { panic("padding can't be negative") }
	}
	switch len(values) {
	case 1:
		self.padTop, self.padRight, self.padBottom, self.padLeft = values[0], values[0], values[0], values[0]
	case 2:
		self.padTop, self.padBottom = values[0], values[0]
		self.padRight, self.padLeft = values[1], values[1]
	case 3:
		self.padTop = values[0]
		self.padRight, self.padLeft = values[1], values[1]
		self.padBottom = values[2]
	case 4:
		self.padTop, self.padRight, self.padBottom, self.padLeft = values[0], values[1], values[2], values[3]
	default:
		panic("SetPadding expects between 1 and 4 values")
	}
	self.lastLayout = nil
}

// Returns the four resolved padding values as (top, right, bottom, left).
func (self *Renderer) GetPadding() (top, right, bottom, left int) {
	return self.padTop, self.padRight, self.padBottom, self.padLeft
}

// Sets the horizontal alignment used to position each line within the
// inner width. Values outside the declared [Align] constants are
// rejected with [ErrInvalidAlignment].
//
// [Justify] is accepted here but rejected later at build time; see
// the [Align] documentation.
func (self *Renderer) SetAlign(align Align) error {
	self.initDefaults()
	if !align.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAlignment, align)
	}
	self.align = align
	self.lastLayout = nil
	return nil
}

// Returns the current alignment. The default alignment is [Left].
func (self *Renderer) GetAlign() Align {
	self.initDefaults()
	return self.align
}

// Sets the background color of the canvas. The default background is
// fully transparent black. Use [ParseHex]() or [Channels]() if your
// color comes as a string or tuple.
func (self *Renderer) SetBackground(clr color.Color) {
	self.initDefaults()
	self.background = clr
}

// Returns the current background color.
func (self *Renderer) GetBackground() color.Color {
	self.initDefaults()
	return self.background
}

// Sets the color used to draw the text. The default color is white.
func (self *Renderer) SetTextColor(clr color.Color) {
	self.initDefaults()
	self.textColor = clr
}

// Returns the current text color.
func (self *Renderer) GetTextColor() color.Color {
	self.initDefaults()
	return self.textColor
}

// Overrides the line height, in pixels. Zero (the default) derives the
// line height from the tallest measured candidate line instead.
func (self *Renderer) SetLineHeight(height int) {
	if height < 0 { panic("line height can't be negative") }
	self.lineHeight = height
	self.lastLayout = nil
}

// Returns the resolved line height: the value computed by the most
// recent successful layout, or the configured override if no layout
// has run since the configuration last changed.
func (self *Renderer) GetLineHeight() int {
	if self.lastLayout != nil { return self.lastLayout.LineHeight }
	return self.lineHeight
}

// Overrides the baseline offset, in pixels: the distance between each
// line's bottom edge and its text baseline. Zero (the default) derives
// the offset from the measured candidate lines instead.
func (self *Renderer) SetLineOffset(offset int) {
	if offset < 0 { panic("line offset can't be negative") }
	self.lineOffset = offset
	self.lastLayout = nil
}

// Returns the resolved baseline offset: the value computed by the most
// recent successful layout, or the configured override if no layout
// has run since the configuration last changed.
func (self *Renderer) GetLineOffset() int {
	if self.lastLayout != nil { return self.lastLayout.LineOffset }
	return self.lineOffset
}

// Sets the reference font size used for the first measurement in
// headline mode. Higher values make the fitted size more precise at
// the cost of a more expensive reference measurement. The default is
// [DefaultHeadlineScale].
func (self *Renderer) SetHeadlineScale(scale float64) {
	if scale <= 0 { panic("headline scale must be positive") }
	self.initDefaults()
	self.headlineScale = scale
	self.lastLayout = nil
}

// Returns the current headline reference scale.
func (self *Renderer) GetHeadlineScale() float64 {
	self.initDefaults()
	return self.headlineScale
}

// Sets the rasterizer used for measuring and drawing. Nil rasterizers
// are not allowed. By default, renderers use [raster.NewSource]().
func (self *Renderer) SetRasterizer(rast Rasterizer) {
	if rast == nil { panic("can't set a nil rasterizer") }
	self.rast = rast
	self.lastLayout = nil
}

// Returns the current rasterizer, creating the default one if none
// has been set yet.
func (self *Renderer) GetRasterizer() Rasterizer {
	if self.rast == nil { self.rast = raster.NewSource() }
	return self.rast
}
