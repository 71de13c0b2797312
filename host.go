package tooltip

import "github.com/grindlemire/go-tooltip/internal/placement"

// Host inserts overlays above the rest of the display tree.
//
// Insert is called once when a show starts from Hidden and Remove once when
// the tooltip reaches Hidden again. MarkNeedsRebuild asks the host to rebuild
// the overlay's visuals; it is called on every animation frame and on the
// frame after the resolved direction changes.
type Host interface {
	Insert(o *Overlay)
	Remove(o *Overlay)
	MarkNeedsRebuild(o *Overlay)
}

// Anchor reports the target's current rectangle and the viewport size. It is
// read on every layout pass.
type Anchor interface {
	Rect() Rect
	Viewport() Size
}

// FixedAnchor is an Anchor with explicit geometry. Update the fields and
// call Tooltip.Layout when the target moves.
type FixedAnchor struct {
	Target Rect
	View   Size
}

// Rect returns the target rectangle.
func (a *FixedAnchor) Rect() Rect { return a.Target }

// Viewport returns the viewport size.
func (a *FixedAnchor) Viewport() Size { return a.View }

// Overlay is one inserted tooltip overlay. Renderers read its placement and
// animation frame and report the measured content size back.
type Overlay struct {
	tooltip   *Tooltip
	placement PlacementResult
	arrow     *ArrowGeometry
	frame     AnimationFrame
}

// Tooltip returns the owning tooltip.
func (o *Overlay) Tooltip() *Tooltip {
	return o.tooltip
}

// Placement returns the latest placement.
func (o *Overlay) Placement() PlacementResult {
	return o.placement
}

// Direction returns the resolved direction of the latest placement.
func (o *Overlay) Direction() Direction {
	return o.placement.Direction
}

// Alignment returns the configured alignment after text direction resolution.
func (o *Overlay) Alignment() Alignment {
	t := o.tooltip
	return placement.ResolveAlignment(o.placement.Direction, t.cfg.alignment, t.textDirection())
}

// Arrow returns the resolved arrow, or nil if none is configured.
func (o *Overlay) Arrow() *ArrowGeometry {
	return o.arrow
}

// Frame returns the current animation frame.
func (o *Overlay) Frame() AnimationFrame {
	return o.frame
}

// Position returns the placed position with the animation offset applied.
func (o *Overlay) Position() Point {
	return o.placement.Position.Add(o.frame.Offset)
}

// Text returns the literal text content, or "" for builder content.
func (o *Overlay) Text() string {
	return o.tooltip.cfg.text
}

// Content returns the content node: the builder's result when a builder is
// configured, otherwise the literal text.
func (o *Overlay) Content() any {
	if b := o.tooltip.cfg.builder; b != nil {
		return b()
	}
	return o.tooltip.cfg.text
}

// ReportSize tells the tooltip the measured content size. The placement is
// recomputed immediately when the size changed.
func (o *Overlay) ReportSize(s Size) {
	o.tooltip.reportSize(o, s)
}
