package textbox

import "fmt"
import "image/color"

// Parses a hex color string into an opaque color. Both the short
// #RGB form and the full #RRGGBB form are accepted, case-insensitively;
// short-form channels are doubled (#F80 equals #FF8800). Any other
// shape fails with [ErrInvalidColorFormat].
func ParseHex(input string) (color.NRGBA, error) {
	if len(input) == 0 || input[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("%w: %q (must start with '#')", ErrInvalidColorFormat, input)
	}

	digits := input[1 : ]
	switch len(digits) {
	case 3:
		r, okR := hexNibble(digits[0])
		g, okG := hexNibble(digits[1])
		b, okB := hexNibble(digits[2])
		if !okR || !okG || !okB {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, input)
		}
		return color.NRGBA{ R: r*16 + r, G: g*16 + g, B: b*16 + b, A: 255 }, nil
	case 6:
		r, okR := hexByte(digits[0], digits[1])
		g, okG := hexByte(digits[2], digits[3])
		b, okB := hexByte(digits[4], digits[5])
		if !okR || !okG || !okB {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, input)
		}
		return color.NRGBA{ R: r, G: g, B: b, A: 255 }, nil
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q (expected 3 or 6 hex digits)", ErrInvalidColorFormat, input)
	}
}

// Builds a color from 3 (RGB, opaque) or 4 (RGBA) integer channels,
// each in [0, 255]. Any other arity or out-of-range value fails with
// [ErrInvalidColorFormat].
func Channels(values ...int) (color.NRGBA, error) {
	if len(values) != 3 && len(values) != 4 {
		return color.NRGBA{}, fmt.Errorf("%w: expected 3 or 4 channels, got %d", ErrInvalidColorFormat, len(values))
	}
	for _, value := range values {
		if value < 0 || value > 255 {
			return color.NRGBA{}, fmt.Errorf("%w: channel value %d outside [0, 255]", ErrInvalidColorFormat, value)
		}
	}

	clr := color.NRGBA{ R: uint8(values[0]), G: uint8(values[1]), B: uint8(values[2]), A: 255 }
	if len(values) == 4 { clr.A = uint8(values[3]) }
	return clr, nil
}

func hexNibble(char byte) (uint8, bool) {
	switch {
	case char >= '0' && char <= '9': return char - '0', true
	case char >= 'a' && char <= 'f': return char - 'a' + 10, true
	case char >= 'A' && char <= 'F': return char - 'A' + 10, true
	default:
		return 0, false
	}
}

func hexByte(hi, lo byte) (uint8, bool) {
	hiVal, okHi := hexNibble(hi)
	loVal, okLo := hexNibble(lo)
	return hiVal*16 + loVal, okHi && okLo
}
