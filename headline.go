package textbox

import "fmt"

// Headline fitting (font size unset): derive the font size that makes
// the full, unwrapped text span the inner width.

// Result of a headline fit. The line keeps the rasterizer-reported
// left bearing as its offset, unlike wrapped lines, so left alignment
// can pull the glyphs flush against the left padding edge.
type headlineFit struct {
	line Line
	fontSize float64
	lineHeight int
	lineOffset int
}

// Two-pass proportional search. First the text is measured at a large
// reference scale, then the final size is derived linearly:
//   fontSize = scale/(referenceWidth/innerWidth)
// A single re-measure at the derived size captures the metrics actually
// used for rendering. No further iteration: glyph widths are close
// enough to linear in font size that the residual error stays small,
// and a higher scale tightens it further.
func fitHeadline(rast Rasterizer, fnt *Font, scale float64, innerWidth int, text string) (headlineFit, error) {
	reference, err := measure(rast, fnt, scale, text)
	if err != nil { return headlineFit{}, err }
	if reference.Width() <= 0 {
		return headlineFit{}, fmt.Errorf("%w: text measured with zero width at reference scale", ErrRasterizer)
	}

	fontSize := scale/(float64(reference.Width())/float64(innerWidth))
	final, err := measure(rast, fnt, fontSize, text)
	if err != nil { return headlineFit{}, err }

	return headlineFit{
		line: Line{ Text: text, Width: final.Width(), Offset: final.LeftBearing() },
		fontSize: fontSize,
		lineHeight: final.Height(),
		lineOffset: final.BaselineOffset(),
	}, nil
}
