package textbox

import "fmt"
import "strings"

// Aligns tell the renderer how to place each wrapped line within the
// inner width of the canvas (the target width minus side paddings).
//
// [Justify] is a declared value accepted by the parser for completeness,
// but the layout stage has no spacing rule for it and rejects it at
// build time with [ErrInvalidAlignment].
type Align uint8

const (
	Left Align = iota
	Right
	Center
	Justify
)

func (self Align) String() string {
	switch self {
	case Left: return "Left"
	case Right: return "Right"
	case Center: return "Center"
	case Justify: return "Justify"
	default:
		return "UnknownAlign"
	}
}

// Parses an alignment name. Accepted values are "left", "right",
// "center" and "justify", case-insensitively. Anything else results
// in [ErrInvalidAlignment].
func ParseAlign(value string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left": return Left, nil
	case "right": return Right, nil
	case "center": return Center, nil
	case "justify": return Justify, nil
	default:
		return Left, fmt.Errorf("%w: %q", ErrInvalidAlignment, value)
	}
}

// Whether the value is one of the declared [Align] constants.
func (self Align) valid() bool { return self <= Justify }
