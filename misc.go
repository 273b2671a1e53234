package textbox

import "golang.org/x/image/font/sfnt"

// Helper types, aliases and functions.

// A handy type alias for sfnt.Font so you don't need to import it
// when already working with textbox.
type Font = sfnt.Font

func maxInt(a, b int) int {
	if a >= b { return a }
	return b
}
