package textbox

import "strings"

// Greedy word wrapping for paragraph mode (explicit font size).

// wrapState is the fold accumulator carried through the wrapping loop:
// closed lines, the open line candidate, and the running maximum line
// height and baseline offset.
//
// The vertical maxima are observed across every measurement, not only
// the accepted lines. That keeps the resolved line metrics stable
// regardless of which words end up on which line.
type wrapState struct {
	lines []Line
	current string
	currentWidth int
	currentKnown bool // whether currentWidth reflects current measured alone
	maxHeight int
	maxOffset int
}

func (self *wrapState) observe(box Box) {
	self.maxHeight = maxInt(self.maxHeight, box.Height())
	self.maxOffset = maxInt(self.maxOffset, box.BaselineOffset())
}

func (self *wrapState) closeCurrent() {
	self.lines = append(self.lines, Line{ Text: self.current, Width: self.currentWidth })
}

// Splits text into wrapping units. Non-breaking spaces (U+00A0) are
// collapsed to regular spaces first, then any run of whitespace
// separates two tokens. Tokens are never split afterwards.
func tokenize(text string) []string {
	return strings.Fields(strings.ReplaceAll(text, "\u00a0", " "))
}

// Folds the token sequence into closed lines against innerWidth. A
// candidate that measures at or beyond innerWidth closes the line
// *before* the offending token, which then opens the next line. A
// single token wider than innerWidth still gets its own overflowing
// line, as tokens are never split.
func wrapParagraph(rast Rasterizer, fnt *Font, size float64, innerWidth int, tokens []string) (*wrapState, error) {
	state := &wrapState{}
	for _, token := range tokens {
		candidate := token
		if state.current != "" { candidate = state.current + " " + token }
		box, err := measure(rast, fnt, size, candidate)
		if err != nil { return nil, err }
		state.observe(box)

		if state.current != "" && box.Width() >= innerWidth {
			// the candidate overflows: close the line without the
			// last token, re-measuring it alone for its final width
			closed, err := measure(rast, fnt, size, state.current)
			if err != nil { return nil, err }
			state.observe(closed)
			state.currentWidth = closed.Width()
			state.closeCurrent()
			state.current = token
			state.currentKnown = false
		} else {
			state.current = candidate
			state.currentWidth = box.Width()
			state.currentKnown = true
		}
	}

	// flush the still-open line, if any
	if state.current != "" {
		if !state.currentKnown {
			closed, err := measure(rast, fnt, size, state.current)
			if err != nil { return nil, err }
			state.observe(closed)
			state.currentWidth = closed.Width()
		}
		state.closeCurrent()
	}
	return state, nil
}
