package anim

import (
	"fmt"

	"github.com/grindlemire/go-tooltip/internal/placement"
)

// Kind selects how progress is rendered.
type Kind int

const (
	None Kind = iota
	Fade
	Scale
	Slide
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Fade:
		return "fade"
	case Scale:
		return "scale"
	case Slide:
		return "slide"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses an animation kind name.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "none":
		return None, nil
	case "fade":
		return Fade, nil
	case "scale":
		return Scale, nil
	case "slide":
		return Slide, nil
	}
	return None, fmt.Errorf("unknown animation kind %q", s)
}

// Frame is the visual state of the overlay for one frame.
type Frame struct {
	Opacity float64
	Scale   float64
	// Offset is added to the placed position. Slide uses it to start the
	// overlay away from the target and move it in.
	Offset placement.Point
}

// SlideDistance is how far a Slide animation travels.
const SlideDistance = 8.0

// FrameFor computes the frame for eased progress t on an overlay placed in dir.
func FrameFor(k Kind, dir placement.Direction, t float64) Frame {
	f := Frame{Opacity: 1, Scale: 1}
	switch k {
	case Fade:
		f.Opacity = t
	case Scale:
		f.Opacity = t
		f.Scale = t
	case Slide:
		f.Opacity = t
		d := (1 - t) * SlideDistance
		switch dir {
		case placement.Top:
			f.Offset.Y = -d
		case placement.Bottom:
			f.Offset.Y = d
		case placement.Left:
			f.Offset.X = -d
		case placement.Right:
			f.Offset.X = d
		}
	}
	return f
}
