package sched

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by a virtual clock. Nothing runs until
// Advance or RunFrame is called, which makes timer choreography fully
// deterministic.
//
// Frames fire at every multiple of FrameDuration on the virtual clock.
type Manual struct {
	FrameDuration time.Duration

	now    time.Duration
	nextID Token
	seq    uint64
	timers []manualTimer
	frames frameSet
}

type manualTimer struct {
	tok Token
	due time.Duration
	seq uint64
	fn  func()
}

var _ Scheduler = (*Manual)(nil)

// NewManual creates a manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{FrameDuration: DefaultFrameDuration}
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// After schedules fn at now+d.
func (m *Manual) After(d time.Duration, fn func()) Token {
	m.nextID++
	m.seq++
	m.timers = append(m.timers, manualTimer{tok: m.nextID, due: m.now + max(d, 0), seq: m.seq, fn: fn})
	return m.nextID
}

// Frame schedules fn for the next frame boundary.
func (m *Manual) Frame(fn func(time.Duration)) Token {
	m.nextID++
	m.frames.add(m.nextID, fn)
	return m.nextID
}

// Cancel removes a pending timer or frame callback.
func (m *Manual) Cancel(tok Token) {
	if tok == 0 {
		return
	}
	for i, t := range m.timers {
		if t.tok == tok {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
	m.frames.remove(tok)
}

// Pending returns the number of outstanding timers and frame callbacks.
func (m *Manual) Pending() int {
	return len(m.timers) + m.frames.len()
}

// Advance moves the virtual clock forward by d, firing every timer and
// frame that falls due on the way, in time order. Timers due at the same
// instant as a frame fire first.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for {
		at, isFrame, ok := m.nextEvent()
		if !ok || at > end {
			break
		}
		m.now = at
		if isFrame {
			m.RunFrame()
		} else {
			m.fireTimer()
		}
	}
	m.now = end
}

// RunFrame fires the callbacks registered before this call. Callbacks
// registered while it runs wait for the next frame.
func (m *Manual) RunFrame() {
	for _, tok := range m.frames.drainOrder() {
		if fn, ok := m.frames.take(tok); ok {
			fn(m.FrameDuration)
		}
	}
}

func (m *Manual) nextEvent() (time.Duration, bool, bool) {
	var (
		at      time.Duration
		isFrame bool
		found   bool
	)
	if len(m.timers) > 0 {
		sort.SliceStable(m.timers, func(i, j int) bool {
			if m.timers[i].due != m.timers[j].due {
				return m.timers[i].due < m.timers[j].due
			}
			return m.timers[i].seq < m.timers[j].seq
		})
		at, found = m.timers[0].due, true
	}
	if m.frames.len() > 0 && m.FrameDuration > 0 {
		next := (m.now/m.FrameDuration + 1) * m.FrameDuration
		if !found || next < at {
			at, isFrame, found = next, true, true
		}
	}
	return at, isFrame, found
}

func (m *Manual) fireTimer() {
	t := m.timers[0]
	m.timers = m.timers[1:]
	t.fn()
}
