package sched

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/grindlemire/go-tooltip/internal/debug"
)

// LoopOption is a functional option for configuring a Loop.
type LoopOption func(*Loop) error

// WithFrameRate sets the frame rate for frame callbacks.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) LoopOption {
	return func(l *Loop) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		l.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithQueueSize(size int) LoopOption {
	return func(l *Loop) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		l.queueSize = size
		return nil
	}
}

// Loop is a wall-clock Scheduler with a single event loop goroutine.
//
// Thread Safety Rules:
//   - Run must be called from exactly one goroutine; every callback runs there
//   - Post is safe to call from any goroutine
//   - After, Frame and Cancel may be called from any goroutine, but
//     cancel-before-fire is only guaranteed when Cancel runs on the loop
type Loop struct {
	mu            sync.Mutex
	nextID        Token
	timers        map[Token]*time.Timer
	frames        frameSet
	queue         chan func()
	queueSize     int
	frameDuration time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once
}

var _ Scheduler = (*Loop)(nil)

// NewLoop creates a loop. Callbacks do not run until Run is called.
func NewLoop(opts ...LoopOption) (*Loop, error) {
	l := &Loop{
		timers:        make(map[Token]*time.Timer),
		queueSize:     256,
		frameDuration: DefaultFrameDuration,
		stopCh:        make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	l.queue = make(chan func(), l.queueSize)
	return l, nil
}

// Run processes posted work, fired timers and frames until ctx is done or
// Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.frameDuration)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case fn := <-l.queue:
			fn()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			l.runFrame(dt)
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.stopCh:
			return nil
		}
	}
}

// Stop makes Run return and stops all pending timers. Idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		for tok, t := range l.timers {
			t.Stop()
			delete(l.timers, tok)
		}
		l.frames = frameSet{}
		l.mu.Unlock()
		close(l.stopCh)
	})
}

// Post enqueues fn to run on the loop. Safe to call from any goroutine.
// Work posted after Stop is dropped.
func (l *Loop) Post(fn func()) {
	select {
	case l.queue <- fn:
	case <-l.stopCh:
	}
}

// After schedules fn to run on the loop once d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) Token {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	tok := l.nextID
	l.timers[tok] = time.AfterFunc(d, func() {
		l.Post(func() {
			if l.take(tok) {
				fn()
			}
		})
	})
	return tok
}

// Frame schedules fn for the next frame tick.
func (l *Loop) Frame(fn func(time.Duration)) Token {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	l.frames.add(l.nextID, fn)
	return l.nextID
}

// Cancel stops a pending timer or frame callback.
func (l *Loop) Cancel(tok Token) {
	if tok == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.timers[tok]; ok {
		t.Stop()
		delete(l.timers, tok)
		return
	}
	l.frames.remove(tok)
}

// take removes tok and reports whether it was still pending.
func (l *Loop) take(tok Token) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.timers[tok]; !ok {
		debug.Log("sched: timer %d cancelled before delivery", tok)
		return false
	}
	delete(l.timers, tok)
	return true
}

func (l *Loop) runFrame(dt time.Duration) {
	l.mu.Lock()
	order := l.frames.drainOrder()
	l.mu.Unlock()

	for _, tok := range order {
		l.mu.Lock()
		fn, ok := l.frames.take(tok)
		l.mu.Unlock()
		if ok {
			fn(dt)
		}
	}
}
