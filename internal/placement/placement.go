package placement

// Request is the immutable input to Place.
type Request struct {
	Target          Rect
	Viewport        Size
	Overlay         Size
	Direction       Direction
	Alignment       Alignment
	Gap             float64
	CrossAxisOffset float64
	ScreenMargin    float64
	TextDirection   TextDirection
}

// Result is the output of Place.
type Result struct {
	// Direction is the side actually used, possibly flipped from the request.
	Direction Direction
	// Position is the overlay's top-left corner in viewport coordinates, clamped.
	Position Point
	// MaxSize is the largest size the overlay content may take.
	MaxSize Size
}

// Place resolves alignment and direction, computes the ideal offset and
// clamps it to the viewport. It is deterministic and keeps no state.
func Place(req Request) Result {
	align := ResolveAlignment(req.Direction, req.Alignment, req.TextDirection)
	dir := ResolveDirection(req)
	ideal := IdealOffset(dir, align, req.Target, req.Overlay, req.Gap, req.CrossAxisOffset)
	return Result{
		Direction: dir,
		Position:  Clamp(ideal, req.Overlay, req.Viewport, req.ScreenMargin),
		MaxSize:   MaxSize(req.Viewport, req.ScreenMargin),
	}
}

// ResolveAlignment maps a logical alignment to a physical one. Only the
// horizontal cross axis (Top and Bottom directions) follows the text
// direction; Left and Right always order top-to-bottom.
func ResolveAlignment(dir Direction, align Alignment, text TextDirection) Alignment {
	if !dir.IsVertical() || text != RTL {
		return align
	}
	switch align {
	case Start:
		return End
	case End:
		return Start
	default:
		return align
	}
}

// HasRoom reports whether an overlay placed in dir keeps its far edge within
// [margin, viewport-margin] on the main axis.
func HasRoom(dir Direction, target Rect, viewport, overlay Size, gap, margin float64) bool {
	switch dir {
	case Top:
		return target.Top()-gap-overlay.Height >= margin
	case Bottom:
		return target.Bottom()+gap+overlay.Height <= viewport.Height-margin
	case Left:
		return target.Left()-gap-overlay.Width >= margin
	default:
		return target.Right()+gap+overlay.Width <= viewport.Width-margin
	}
}

// ResolveDirection keeps the preferred direction when it has room, flips to
// the opposite side when only that one has room, and otherwise keeps the
// preferred direction and leaves the rest to clamping.
func ResolveDirection(req Request) Direction {
	if HasRoom(req.Direction, req.Target, req.Viewport, req.Overlay, req.Gap, req.ScreenMargin) {
		return req.Direction
	}
	opposite := req.Direction.Opposite()
	if HasRoom(opposite, req.Target, req.Viewport, req.Overlay, req.Gap, req.ScreenMargin) {
		return opposite
	}
	return req.Direction
}

// IdealOffset returns the unclamped top-left corner of the overlay.
//
// A positive crossAxisOffset moves the overlay toward the target's centre
// for End alignment and in the positive axis direction otherwise.
func IdealOffset(dir Direction, align Alignment, target Rect, overlay Size, gap, crossAxisOffset float64) Point {
	var p Point
	switch dir {
	case Top:
		p.Y = target.Top() - gap - overlay.Height
	case Bottom:
		p.Y = target.Bottom() + gap
	case Left:
		p.X = target.Left() - gap - overlay.Width
	case Right:
		p.X = target.Right() + gap
	}

	if dir.IsVertical() {
		p.X = crossOffset(align, target.Left(), target.Width, overlay.Width, crossAxisOffset)
	} else {
		p.Y = crossOffset(align, target.Top(), target.Height, overlay.Height, crossAxisOffset)
	}
	return p
}

func crossOffset(align Alignment, start, extent, overlayExtent, offset float64) float64 {
	switch align {
	case Start:
		return start + offset
	case End:
		return start + extent - overlayExtent - offset
	default:
		return start + extent/2 - overlayExtent/2 + offset
	}
}

// Clamp constrains each axis to [margin, max(margin, viewport-overlay-margin)].
// An overlay larger than the available space collapses to margin.
func Clamp(p Point, overlay, viewport Size, margin float64) Point {
	return Point{
		X: clampAxis(p.X, overlay.Width, viewport.Width, margin),
		Y: clampAxis(p.Y, overlay.Height, viewport.Height, margin),
	}
}

func clampAxis(v, extent, viewport, margin float64) float64 {
	hi := max(margin, viewport-extent-margin)
	return min(max(v, margin), hi)
}

// MaxSize returns the viewport minus twice the margin, floored at zero.
func MaxSize(viewport Size, margin float64) Size {
	return Size{
		Width:  max(0, viewport.Width-2*margin),
		Height: max(0, viewport.Height-2*margin),
	}
}
