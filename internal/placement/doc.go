// Package placement computes where an anchored overlay box is drawn
// relative to a target rectangle inside a viewport.
//
// The engine is a set of pure functions. Given a Request it resolves the
// logical alignment against the text direction, flips the preferred
// direction when the preferred side lacks room, computes the ideal offset
// along both axes and finally clamps the result so the overlay stays inside
// the viewport minus the screen margin.
//
// Degenerate geometry (zero sized overlays, viewports smaller than twice the
// margin, overlays larger than the viewport) never produces an error. The
// result is a best-effort position that may be visually clipped.
//
// Placer wraps Place with a notification that fires when the resolved
// direction changes between calls, so direction-dependent decoration such
// as an arrow can be rebuilt.
package placement
