// layout.go re-exports placement and animation types from internal packages.
// Any changes to those types must be mirrored here.
package tooltip

import (
	"github.com/grindlemire/go-tooltip/internal/anim"
	"github.com/grindlemire/go-tooltip/internal/placement"
)

// Direction identifies which side of the target the overlay prefers.
type Direction = placement.Direction

const (
	Top    = placement.Top
	Bottom = placement.Bottom
	Left   = placement.Left
	Right  = placement.Right
)

// Alignment is the cross-axis placement relative to the target.
type Alignment = placement.Alignment

const (
	AlignStart  = placement.Start
	AlignCenter = placement.Center
	AlignEnd    = placement.End
)

// TextDirection is the reading direction used to resolve Start and End.
type TextDirection = placement.TextDirection

const (
	LTR               = placement.LTR
	RTL               = placement.RTL
	TextDirectionAuto = placement.Auto
)

// Rect represents a rectangle in viewport coordinates.
type Rect = placement.Rect

// Size represents a width/height pair.
type Size = placement.Size

// Point represents an (X, Y) coordinate.
type Point = placement.Point

// PlacementRequest is the input to Place.
type PlacementRequest = placement.Request

// PlacementResult is the resolved direction, clamped position and size limit.
type PlacementResult = placement.Result

// Arrow configures the pointer drawn between overlay and target.
type Arrow = placement.Arrow

// ArrowGeometry is a resolved arrow.
type ArrowGeometry = placement.ArrowGeometry

// AnimationKind selects how show/hide progress is rendered.
type AnimationKind = anim.Kind

const (
	AnimationNone  = anim.None
	AnimationFade  = anim.Fade
	AnimationScale = anim.Scale
	AnimationSlide = anim.Slide
)

// Easing maps linear animation progress to eased progress.
type Easing = anim.Easing

const (
	EaseLinear = anim.Linear
	EaseIn     = anim.EaseIn
	EaseOut    = anim.EaseOut
	EaseInOut  = anim.EaseInOut
)

// AnimationFrame is the visual state of an overlay for one frame.
type AnimationFrame = anim.Frame

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return placement.NewRect(x, y, width, height)
}

// Place computes a placement without any lifecycle. It is pure and safe to
// call from any goroutine.
func Place(req PlacementRequest) PlacementResult {
	return placement.Place(req)
}

// ResolveAlignment maps a logical alignment to the physical one used for an
// overlay placed in dir under the given text direction.
func ResolveAlignment(dir Direction, align Alignment, text TextDirection) Alignment {
	return placement.ResolveAlignment(dir, align, text)
}

// ArrowFor computes the arrow for a placement produced from req.
func ArrowFor(req PlacementRequest, res PlacementResult, a Arrow) ArrowGeometry {
	return placement.ArrowFor(req, res, a)
}
