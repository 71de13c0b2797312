package sched

import (
	"context"
	"testing"
	"time"
)

func newTestLoop(t *testing.T) (*Loop, func()) {
	t.Helper()
	l, err := NewLoop(WithFrameRate(200))
	if err != nil {
		t.Fatalf("NewLoop() error = %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()
	return l, func() {
		cancel()
		<-done
	}
}

func TestNewLoop_Options(t *testing.T) {
	type tc struct {
		opts    []LoopOption
		wantErr bool
	}

	tests := map[string]tc{
		"defaults":            {},
		"valid frame rate":    {opts: []LoopOption{WithFrameRate(30)}},
		"frame rate too low":  {opts: []LoopOption{WithFrameRate(0)}, wantErr: true},
		"frame rate too high": {opts: []LoopOption{WithFrameRate(500)}, wantErr: true},
		"zero queue":          {opts: []LoopOption{WithQueueSize(0)}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewLoop(tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewLoop() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoop_AfterRunsOnLoop(t *testing.T) {
	l, stop := newTestLoop(t)
	defer stop()

	fired := make(chan struct{})
	l.After(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestLoop_CancelOnLoopPreventsFire(t *testing.T) {
	l, stop := newTestLoop(t)
	defer stop()

	fired := make(chan struct{}, 1)
	done := make(chan struct{})
	l.Post(func() {
		tok := l.After(time.Millisecond, func() { fired <- struct{}{} })
		// Block the loop past the deadline, then cancel before the
		// delivered callback gets a chance to run.
		time.Sleep(20 * time.Millisecond)
		l.Cancel(tok)
		l.After(30*time.Millisecond, func() { close(done) })
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop stalled")
	}
	select {
	case <-fired:
		t.Error("cancelled timer fired")
	default:
	}
}

func TestLoop_FrameCallback(t *testing.T) {
	l, stop := newTestLoop(t)
	defer stop()

	got := make(chan time.Duration, 1)
	l.Frame(func(dt time.Duration) { got <- dt })

	select {
	case dt := <-got:
		if dt <= 0 {
			t.Errorf("dt = %v, want positive", dt)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("frame callback did not run")
	}
}

func TestLoop_StopIsIdempotent(t *testing.T) {
	l, err := NewLoop()
	if err != nil {
		t.Fatal(err)
	}
	result := make(chan error, 1)
	go func() { result <- l.Run(context.Background()) }()

	l.Stop()
	l.Stop()
	select {
	case err := <-result:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	// Posting after stop must not block.
	l.Post(func() {})
}
