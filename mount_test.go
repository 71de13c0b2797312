package tooltip

import "testing"

func TestMounts_SweepHidesUnmarked(t *testing.T) {
	reg := NewRegistry()
	s := NewManualScheduler()
	a := newFixtureIn(t, reg, s, instant())
	b := newFixtureIn(t, reg, s, instant())

	m := NewMounts()
	m.Mark(a.tip)
	m.Mark(b.tip)
	if got := m.Sweep(); got != 0 {
		t.Fatalf("first Sweep() = %d, want 0", got)
	}

	a.tip.RequestShow()
	a.expectState(t, Visible)

	// a's anchor left the tree.
	m.Mark(b.tip)
	if got := m.Sweep(); got != 1 {
		t.Fatalf("Sweep() = %d, want 1", got)
	}
	a.expectState(t, Hidden)
	if a.hides != 1 {
		t.Errorf("onHide fired %d times, want 1", a.hides)
	}
	if a.tip.Disposed() {
		t.Error("swept tooltip was disposed, want only hidden")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}

	// Sweeping again does not touch a, which is no longer tracked.
	m.Mark(b.tip)
	if got := m.Sweep(); got != 0 {
		t.Errorf("Sweep() = %d, want 0", got)
	}
}

func TestMounts_RemarkedSurvives(t *testing.T) {
	f := newFixture(t, instant())
	m := NewMounts()

	m.Mark(f.tip)
	m.Sweep()
	f.tip.RequestShow()

	m.Mark(f.tip)
	m.Sweep()
	f.expectState(t, Visible)
}

func TestMounts_Unmount(t *testing.T) {
	f := newFixture(t, instant())
	m := NewMounts()
	m.Mark(f.tip)
	m.Sweep()
	f.tip.RequestShow()

	m.Unmount(f.tip)

	if !f.tip.Disposed() {
		t.Error("Disposed() = false after Unmount")
	}
	if len(f.host.Overlays()) != 0 {
		t.Errorf("host has %d overlays, want 0", len(f.host.Overlays()))
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}
