package anim

import "fmt"

// Easing maps linear progress to eased progress. Both are in [0,1].
type Easing int

const (
	Linear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
)

// Transform applies the easing curve to t.
func (e Easing) Transform(t float64) float64 {
	t = min(max(t, 0), 1)
	switch e {
	case EaseIn:
		return t * t * t
	case EaseOut:
		u := 1 - t
		return 1 - u*u*u
	case EaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	default:
		return t
	}
}

func (e Easing) String() string {
	switch e {
	case Linear:
		return "linear"
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "ease-out"
	case EaseInOut:
		return "ease-in-out"
	default:
		return fmt.Sprintf("Easing(%d)", int(e))
	}
}

// ParseEasing parses an easing name such as "ease-out".
func ParseEasing(s string) (Easing, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "ease-in":
		return EaseIn, nil
	case "ease-out":
		return EaseOut, nil
	case "ease-in-out":
		return EaseInOut, nil
	}
	return Linear, fmt.Errorf("unknown easing %q", s)
}
