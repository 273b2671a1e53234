package textbox

import "fmt"
import "math"
import "strings"

// A single laid out line of text. Lines are produced by
// [Renderer.Layout]() and never mutated afterwards.
type Line struct {
	Text string // the line's text, single-space separated
	Width int // measured width, in pixels
	Offset int // left-bearing correction (0 for wrapped lines)
	X int // horizontal draw position resolved from the alignment
}

// The result of a layout pass: the resolved lines plus every metric
// needed to draw them. See [Renderer.Layout]().
type Layout struct {
	Lines []Line
	LineHeight int // vertical advance between lines, in pixels
	LineOffset int // distance from each line's bottom edge to its baseline
	FontSize float64 // the effective size (derived in headline mode)
	Width int // canvas width, as configured
	Height int // canvas height, computed from the line count
	InnerWidth int // width minus side paddings
}

// Runs the layout stage without drawing anything: validates the
// configuration, wraps or fits the text, resolves the vertical metrics
// and each line's horizontal position, and computes the canvas height.
//
// [Renderer.Render]() calls this internally; use Layout directly when
// you only need the geometry.
func (self *Renderer) Layout() (*Layout, error) {
	self.initDefaults()

	// configuration validation
	tokens := tokenize(self.text)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: text not set (or blank)", ErrMissingConfig)
	}
	if self.width <= 0 {
		return nil, fmt.Errorf("%w: width not set", ErrMissingConfig)
	}
	if self.fnt == nil {
		return nil, fmt.Errorf("%w: font not set", ErrMissingConfig)
	}
	if self.align == Justify {
		return nil, fmt.Errorf("%w: justify has no layout rule", ErrInvalidAlignment)
	}
	innerWidth := self.width - self.padLeft - self.padRight
	if innerWidth <= 0 {
		return nil, fmt.Errorf("%w: padding leaves no inner width (%d)", ErrMissingConfig, innerWidth)
	}

	layout := &Layout{ Width: self.width, InnerWidth: innerWidth }
	rast := self.GetRasterizer()
	if self.fontSize > 0 { // paragraph mode
		state, err := wrapParagraph(rast, self.fnt, self.fontSize, innerWidth, tokens)
		if err != nil { return nil, err }
		layout.Lines = state.lines
		layout.LineHeight = state.maxHeight
		layout.LineOffset = state.maxOffset
		layout.FontSize = self.fontSize
	} else { // headline mode
		fit, err := fitHeadline(rast, self.fnt, self.headlineScale, innerWidth, strings.Join(tokens, " "))
		if err != nil { return nil, err }
		layout.Lines = []Line{ fit.line }
		layout.LineHeight = fit.lineHeight
		layout.LineOffset = fit.lineOffset
		layout.FontSize = fit.fontSize
	}

	// explicit overrides win over the autodetected metrics
	if self.lineHeight > 0 { layout.LineHeight = self.lineHeight }
	if self.lineOffset > 0 { layout.LineOffset = self.lineOffset }

	layout.Height = self.padTop + self.padBottom + len(layout.Lines)*layout.LineHeight
	for index := range layout.Lines {
		layout.Lines[index].X = self.lineX(innerWidth, layout.Lines[index])
	}

	self.lastLayout = layout
	return layout, nil
}

// Resolves a line's horizontal draw position from the alignment policy.
// Justify never reaches this point, it's rejected during validation.
func (self *Renderer) lineX(innerWidth int, line Line) int {
	switch self.align {
	case Right:
		return self.padLeft + innerWidth - line.Width
	case Center:
		return int(math.Round(float64(self.padLeft) + float64(innerWidth - line.Width)/2))
	default: // Left
		return self.padLeft - line.Offset
	}
}
