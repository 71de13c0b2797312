package tooltip

import "github.com/grindlemire/go-tooltip/internal/sched"

// Scheduler runs single-shot timers and frame callbacks on one event loop.
type Scheduler = sched.Scheduler

// Token identifies a scheduled callback.
type Token = sched.Token

// Loop is a wall-clock Scheduler with its own event loop goroutine.
type Loop = sched.Loop

// LoopOption configures a Loop.
type LoopOption = sched.LoopOption

// ManualScheduler is a Scheduler driven by a virtual clock.
type ManualScheduler = sched.Manual

// NewLoop creates a wall-clock loop. Call Run to start processing.
func NewLoop(opts ...LoopOption) (*Loop, error) {
	return sched.NewLoop(opts...)
}

// WithFrameRate sets the loop's frame rate (1-240 fps).
func WithFrameRate(fps int) LoopOption {
	return sched.WithFrameRate(fps)
}

// WithQueueSize sets the loop's event queue capacity.
func WithQueueSize(size int) LoopOption {
	return sched.WithQueueSize(size)
}

// NewManualScheduler creates a virtual-clock scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return sched.NewManual()
}
