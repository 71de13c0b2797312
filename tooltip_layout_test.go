package tooltip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func instant() Option {
	return WithAnimation(AnimationNone, 0, EaseLinear)
}

func TestLayout_ReportSizeRelayouts(t *testing.T) {
	f := newFixture(t, instant())
	f.tip.RequestShow()
	o := f.tip.Overlay()

	o.ReportSize(Size{Width: 120, Height: 30})

	want := PlacementResult{
		Direction: Top,
		Position:  Point{X: 290, Y: 262},
		MaxSize:   Size{Width: 784, Height: 584},
	}
	if diff := cmp.Diff(want, o.Placement()); diff != "" {
		t.Errorf("Placement() mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_DirectionChangeRebuildsNextFrame(t *testing.T) {
	f := newFixture(t, instant())
	f.tip.RequestShow()
	o := f.tip.Overlay()
	o.ReportSize(Size{Width: 120, Height: 30})

	f.anchor.Target = NewRect(300, 10, 100, 40)
	f.tip.Layout()

	if got := o.Direction(); got != Bottom {
		t.Fatalf("Direction() = %v, want %v", got, Bottom)
	}
	if f.host.RebuildCount != 0 {
		t.Fatalf("RebuildCount = %d before frame, want 0", f.host.RebuildCount)
	}

	// A second change in the same frame must not queue another rebuild.
	f.anchor.Target = NewRect(300, 300, 100, 40)
	f.tip.Layout()

	f.sched.RunFrame()
	if f.host.RebuildCount != 1 {
		t.Errorf("RebuildCount = %d after frame, want 1", f.host.RebuildCount)
	}
}

func TestLayout_SameDirectionDoesNotRebuild(t *testing.T) {
	f := newFixture(t, instant())
	f.tip.RequestShow()

	f.anchor.Target = NewRect(100, 200, 100, 40)
	f.tip.Layout()
	f.sched.RunFrame()

	if f.host.RebuildCount != 0 {
		t.Errorf("RebuildCount = %d, want 0", f.host.RebuildCount)
	}
}

func TestLayout_NoopWhileHidden(t *testing.T) {
	f := newFixture(t, instant())
	f.tip.Layout()
	if f.tip.Overlay() != nil {
		t.Error("Overlay() != nil while hidden")
	}
}

func TestLayout_Arrow(t *testing.T) {
	f := newFixture(t, instant(), WithArrow(Arrow{Width: 10, Height: 6, PositionRatio: 0.5}))
	f.tip.RequestShow()
	o := f.tip.Overlay()
	o.ReportSize(Size{Width: 120, Height: 30})

	want := &ArrowGeometry{
		Direction: Top,
		Tip:       Point{X: 350, Y: 298},
		Base:      Point{X: 350, Y: 292},
	}
	if diff := cmp.Diff(want, o.Arrow()); diff != "" {
		t.Errorf("Arrow() mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_AutoTextDirection(t *testing.T) {
	type tc struct {
		text      string
		wantAlign Alignment
		wantX     float64
	}

	tests := map[string]tc{
		"latin text keeps start": {text: "hello", wantAlign: AlignStart, wantX: 300},
		"hebrew text flips":      {text: "שלום", wantAlign: AlignEnd, wantX: 280},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, instant(),
				WithText(tt.text),
				WithTextDirection(TextDirectionAuto),
				WithAlignment(AlignStart),
			)
			f.tip.RequestShow()
			o := f.tip.Overlay()
			o.ReportSize(Size{Width: 120, Height: 30})

			if got := o.Alignment(); got != tt.wantAlign {
				t.Errorf("Alignment() = %v, want %v", got, tt.wantAlign)
			}
			if got := o.Position().X; got != tt.wantX {
				t.Errorf("Position().X = %v, want %v", got, tt.wantX)
			}
		})
	}
}

func TestLayout_SlideOffsetsPosition(t *testing.T) {
	f := newFixture(t, WithAnimation(AnimationSlide, 0, EaseLinear))
	f.tip.RequestShow()
	o := f.tip.Overlay()

	// Settled: no offset left.
	if diff := cmp.Diff(o.Placement().Position, o.Position()); diff != "" {
		t.Errorf("Position() mismatch (-want +got):\n%s", diff)
	}
}
