package tooltip

import (
	"testing"
	"time"
)

// settleTime comfortably exceeds the default 150ms animation at 60fps.
const settleTime = 250 * time.Millisecond

type fixture struct {
	tip    *Tooltip
	host   *MockHost
	anchor *FixedAnchor
	sched  *ManualScheduler
	reg    *Registry

	shows int
	hides int
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	return newFixtureIn(t, NewRegistry(), NewManualScheduler(), opts...)
}

func newFixtureIn(t *testing.T, reg *Registry, s *ManualScheduler, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		host:   NewMockHost(),
		anchor: &FixedAnchor{Target: NewRect(300, 300, 100, 40), View: Size{Width: 800, Height: 600}},
		sched:  s,
		reg:    reg,
	}
	all := []Option{
		WithText("hello"),
		WithRegistry(reg),
		WithOnShow(func() { f.shows++ }),
		WithOnHide(func() { f.hides++ }),
	}
	all = append(all, opts...)

	tip, err := New(f.anchor, f.host, s, all...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	f.tip = tip
	return f
}

func (f *fixture) expectState(t *testing.T, want LifecycleState) {
	t.Helper()
	if got := f.tip.State(); got != want {
		t.Fatalf("State() = %v, want %v", got, want)
	}
}
