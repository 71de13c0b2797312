// Package sched provides the cooperative, single-threaded scheduling used by
// tooltip timers and animations.
//
// Every callback runs on the owner's event loop, one at a time. Scheduling
// returns a Token; cancelling a token is synchronous and idempotent, and a
// cancelled callback never runs even if its deadline has already passed.
//
// Two implementations are provided: Loop, a real frame loop driven by wall
// clock time, and Manual, a virtual clock advanced explicitly by tests and
// by hosts that own their own loop.
package sched

import "time"

// Token identifies a scheduled callback. The zero Token is never issued.
type Token uint64

// Scheduler schedules single-shot callbacks.
type Scheduler interface {
	// After runs fn once, d from now.
	After(d time.Duration, fn func()) Token

	// Frame runs fn once on the next frame. dt is the time since the
	// previous frame.
	Frame(fn func(dt time.Duration)) Token

	// Cancel stops a pending callback. Cancelling the zero token, an
	// already fired token or an already cancelled token is a no-op.
	Cancel(tok Token)
}

// DefaultFrameDuration is the frame interval used when none is configured (60 fps).
const DefaultFrameDuration = time.Second / 60
