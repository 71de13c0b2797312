package tooltip

import "fmt"

// LifecycleState is the visibility state of one tooltip.
// Hidden and Visible are resting states; Showing and Hiding resolve
// automatically when the animation completes.
type LifecycleState int

const (
	Hidden LifecycleState = iota
	Showing
	Visible
	Hiding
)

func (s LifecycleState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Showing:
		return "showing"
	case Visible:
		return "visible"
	case Hiding:
		return "hiding"
	default:
		return fmt.Sprintf("LifecycleState(%d)", int(s))
	}
}

// isShown reports whether s is Showing or Visible.
func (s LifecycleState) isShown() bool {
	return s == Showing || s == Visible
}

// Trigger is an input event handled by Tooltip.Handle.
type Trigger int

const (
	PointerEnterAnchor Trigger = iota
	PointerExitAnchor
	PointerEnterOverlay
	PointerExitOverlay
	TapAnchor
)

func (t Trigger) String() string {
	switch t {
	case PointerEnterAnchor:
		return "pointer-enter-anchor"
	case PointerExitAnchor:
		return "pointer-exit-anchor"
	case PointerEnterOverlay:
		return "pointer-enter-overlay"
	case PointerExitOverlay:
		return "pointer-exit-overlay"
	case TapAnchor:
		return "tap-anchor"
	default:
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
}
