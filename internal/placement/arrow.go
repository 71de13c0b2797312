package placement

import (
	"fmt"
	"math"
)

// Arrow describes an optional pointer drawn between the overlay and the target.
type Arrow struct {
	Width  float64 // base width, along the overlay edge
	Height float64 // length from base to tip, spanning the gap
	// PositionRatio is where the tip points along the target's facing edge,
	// measured from the logical start: 0 is the start, 0.5 the centre, 1 the end.
	PositionRatio float64
}

// Validate checks that Width and Height are positive and finite and that
// PositionRatio is within [0,1].
func (a Arrow) Validate() error {
	switch {
	case !(a.Width > 0) || math.IsInf(a.Width, 0):
		return fmt.Errorf("arrow width must be positive, got %v", a.Width)
	case !(a.Height > 0) || math.IsInf(a.Height, 0):
		return fmt.Errorf("arrow height must be positive, got %v", a.Height)
	case !(a.PositionRatio >= 0 && a.PositionRatio <= 1):
		return fmt.Errorf("arrow position ratio must be within [0,1], got %v", a.PositionRatio)
	}
	return nil
}

// ArrowGeometry is the resolved arrow for one placement.
type ArrowGeometry struct {
	// Direction is the side of the target the overlay sits on; the arrow
	// points the opposite way, toward the target.
	Direction Direction
	Tip       Point
	// Base is the centre of the arrow's base on the overlay edge.
	Base Point
}

// ArrowFor computes the arrow for a placement produced from req.
//
// The arrow is perpendicular to the overlay edge. Its cross-axis coordinate
// is the requested point on the target edge, clamped so the whole base stays
// on the overlay edge. The tip sits Height away from the base, toward the target.
func ArrowFor(req Request, res Result, a Arrow) ArrowGeometry {
	pos := res.Position
	g := ArrowGeometry{Direction: res.Direction}
	half := a.Width / 2

	if res.Direction.IsVertical() {
		ratio := a.PositionRatio
		if req.TextDirection == RTL {
			ratio = 1 - ratio
		}
		want := req.Target.Left() + ratio*req.Target.Width
		g.Base.X = clampRange(want, pos.X+half, pos.X+req.Overlay.Width-half)
		g.Tip.X = g.Base.X
		if res.Direction == Top {
			g.Base.Y = pos.Y + req.Overlay.Height
			g.Tip.Y = g.Base.Y + a.Height
		} else {
			g.Base.Y = pos.Y
			g.Tip.Y = g.Base.Y - a.Height
		}
		return g
	}

	want := req.Target.Top() + a.PositionRatio*req.Target.Height
	g.Base.Y = clampRange(want, pos.Y+half, pos.Y+req.Overlay.Height-half)
	g.Tip.Y = g.Base.Y
	if res.Direction == Left {
		g.Base.X = pos.X + req.Overlay.Width
		g.Tip.X = g.Base.X + a.Height
	} else {
		g.Base.X = pos.X
		g.Tip.X = g.Base.X - a.Height
	}
	return g
}

// clampRange clamps v to [lo, max(lo, hi)].
func clampRange(v, lo, hi float64) float64 {
	return min(max(v, lo), max(lo, hi))
}
