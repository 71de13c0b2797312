// Package anim drives show and hide transitions as a single reversible
// progress value.
//
// An Animation holds a progress value in [0,1] and a target endpoint.
// Forward and Reverse only change the endpoint, so an in-flight transition
// turns around from wherever it currently is instead of restarting.
// The owner advances it once per frame with Tick.
package anim

import (
	"fmt"
	"time"
)

// Status describes where an Animation is relative to its endpoints.
type Status int

const (
	// Dismissed is at 0 and not moving.
	Dismissed Status = iota
	// Forward is moving toward 1.
	Forward
	// Completed is at 1 and not moving.
	Completed
	// Reverse is moving toward 0.
	Reverse
)

func (s Status) String() string {
	switch s {
	case Dismissed:
		return "dismissed"
	case Forward:
		return "forward"
	case Completed:
		return "completed"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Animation is a progress value advancing toward a target endpoint at a
// constant rate of one full traversal per Duration.
// It is not safe for concurrent use.
type Animation struct {
	duration time.Duration
	value    float64
	target   float64
}

// New creates a dismissed animation. A non-positive duration makes every
// transition complete on the next Tick.
func New(duration time.Duration) *Animation {
	return &Animation{duration: duration}
}

// Duration returns the time for a full 0 to 1 traversal.
func (a *Animation) Duration() time.Duration {
	return a.duration
}

// Value returns the raw, uneased progress in [0,1].
func (a *Animation) Value() float64 {
	return a.value
}

// Forward sets the endpoint to 1, continuing from the current value.
func (a *Animation) Forward() {
	a.target = 1
}

// Reverse sets the endpoint to 0, continuing from the current value.
func (a *Animation) Reverse() {
	a.target = 0
}

// Reset jumps to 0 and stops.
func (a *Animation) Reset() {
	a.value = 0
	a.target = 0
}

// IsAnimating reports whether the value has not yet reached its endpoint.
func (a *Animation) IsAnimating() bool {
	return a.value != a.target
}

// Status returns the current status.
func (a *Animation) Status() Status {
	switch {
	case a.target == 1 && a.value == 1:
		return Completed
	case a.target == 1:
		return Forward
	case a.value == 0:
		return Dismissed
	default:
		return Reverse
	}
}

// Tick advances the value by dt toward the endpoint and reports whether the
// endpoint was reached on this call.
func (a *Animation) Tick(dt time.Duration) bool {
	if !a.IsAnimating() {
		return false
	}
	if a.duration <= 0 {
		a.value = a.target
		return true
	}

	step := float64(dt) / float64(a.duration)
	if a.target > a.value {
		a.value = min(a.target, a.value+step)
	} else {
		a.value = max(a.target, a.value-step)
	}
	return a.value == a.target
}
