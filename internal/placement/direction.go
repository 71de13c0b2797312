package placement

import "fmt"

// Direction identifies which side of the target the overlay is placed on.
type Direction int

const (
	Top Direction = iota
	Bottom
	Left
	Right
)

// Opposite returns the direction on the other side of the target.
// Top and Bottom swap, Left and Right swap.
func (d Direction) Opposite() Direction {
	switch d {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return Left
	}
}

// IsVertical reports whether the overlay sits above or below the target,
// i.e. the main axis is vertical and the cross axis is horizontal.
func (d Direction) IsVertical() bool {
	return d == Top || d == Bottom
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses a lower-case direction name.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Top, fmt.Errorf("unknown direction %q", s)
}

// Alignment is the cross-axis placement relative to the target.
// Start and End are logical and follow the text direction on the
// horizontal axis; Center is direction-agnostic.
type Alignment int

const (
	Start Alignment = iota
	Center
	End
)

func (a Alignment) String() string {
	switch a {
	case Start:
		return "start"
	case Center:
		return "center"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment parses a lower-case alignment name.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "start":
		return Start, nil
	case "center", "centre":
		return Center, nil
	case "end":
		return End, nil
	}
	return Center, fmt.Errorf("unknown alignment %q", s)
}

// TextDirection is the reading direction of the surrounding content.
type TextDirection int

const (
	LTR TextDirection = iota
	RTL
	// Auto must be resolved to LTR or RTL by the caller before placement.
	// The engine treats an unresolved Auto as LTR.
	Auto
)

func (t TextDirection) String() string {
	switch t {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case Auto:
		return "auto"
	default:
		return fmt.Sprintf("TextDirection(%d)", int(t))
	}
}

// ParseTextDirection parses "ltr", "rtl" or "auto".
func ParseTextDirection(s string) (TextDirection, error) {
	switch s {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	case "auto":
		return Auto, nil
	}
	return LTR, fmt.Errorf("unknown text direction %q", s)
}
