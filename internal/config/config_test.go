package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	tooltip "github.com/grindlemire/go-tooltip"
)

const sampleTOML = `
text = "Save changes"

[placement]
direction = "bottom"
alignment = "start"
text_direction = "rtl"
gap = 4.0
screen_margin = 2.0

[triggers]
interactive = true
wait = "300ms"
show = "2s"

[animation]
kind = "slide"
duration = "200ms"
easing = "ease-in-out"

[arrow]
width = 6.0
height = 3.0
position_ratio = 0.25

[geometry]
target = { x = 100.0, y = 80.0, width = 60.0, height = 20.0 }
viewport = { width = 400.0, height = 300.0 }
overlay = { width = 90.0, height = 24.0 }
`

const sampleYAML = `
text: Save changes
placement:
  direction: bottom
  alignment: start
  text_direction: rtl
  gap: 4
  screen_margin: 2
triggers:
  interactive: true
  wait: 300ms
  show: 2s
animation:
  kind: slide
  duration: 200ms
  easing: ease-in-out
arrow:
  width: 6
  height: 3
  position_ratio: 0.25
geometry:
  target: {x: 100, y: 80, width: 60, height: 20}
  viewport: {width: 400, height: 300}
  overlay: {width: 90, height: 24}
`

func ptr[T any](v T) *T { return &v }

func sampleFile() File {
	return File{
		Text: "Save changes",
		Placement: Placement{
			Direction:     "bottom",
			Alignment:     "start",
			TextDirection: "rtl",
			Gap:           ptr(4.0),
			ScreenMargin:  ptr(2.0),
		},
		Triggers: Triggers{
			Interactive: ptr(true),
			Wait:        "300ms",
			Show:        "2s",
		},
		Animation: Animation{Kind: "slide", Duration: "200ms", Easing: "ease-in-out"},
		Arrow:     &Arrow{Width: 6, Height: 3, PositionRatio: 0.25},
		Geometry: &Geometry{
			Target:   Rect{X: 100, Y: 80, Width: 60, Height: 20},
			Viewport: Size{Width: 400, Height: 300},
			Overlay:  Size{Width: 90, Height: 24},
		},
	}
}

func TestParse(t *testing.T) {
	type tc struct {
		data   string
		format Format
	}

	tests := map[string]tc{
		"toml": {data: sampleTOML, format: TOML},
		"yaml": {data: sampleYAML, format: YAML},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data), tt.format, name)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(sampleFile(), got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_UnknownKeys(t *testing.T) {
	type tc struct {
		data   string
		format Format
	}

	tests := map[string]tc{
		"toml": {data: "[placement]\nside = \"top\"\n", format: TOML},
		"yaml": {data: "placement:\n  side: top\n", format: YAML},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), tt.format, name); err == nil {
				t.Error("Parse() error = nil, want unknown key error")
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	type tc struct {
		path    string
		want    Format
		wantErr bool
	}

	tests := map[string]tc{
		"toml":   {path: "a/tip.toml", want: TOML},
		"yaml":   {path: "tip.yaml", want: YAML},
		"yml":    {path: "tip.YML", want: YAML},
		"json":   {path: "tip.json", wantErr: true},
		"no ext": {path: "tip", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFor(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tip.yml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Text != "Save changes" {
		t.Errorf("Text = %q, want %q", got.Text, "Save changes")
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load() of missing file error = nil")
	}
}

func TestFile_Request(t *testing.T) {
	got, err := sampleFile().Request()
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	want := tooltip.PlacementRequest{
		Target:        tooltip.NewRect(100, 80, 60, 20),
		Viewport:      tooltip.Size{Width: 400, Height: 300},
		Overlay:       tooltip.Size{Width: 90, Height: 24},
		Direction:     tooltip.Bottom,
		Alignment:     tooltip.AlignStart,
		Gap:           4,
		ScreenMargin:  2,
		TextDirection: tooltip.RTL,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Request() mismatch (-want +got):\n%s", diff)
	}

	// RTL start on a Bottom placement lines the right edges up.
	res := tooltip.Place(got)
	if res.Position.X != 70 || res.Position.Y != 104 {
		t.Errorf("Place().Position = %v, want {70 104}", res.Position)
	}
}

func TestFile_RequestDefaults(t *testing.T) {
	f := File{Text: "שלום", Placement: Placement{TextDirection: "auto"}, Geometry: &Geometry{}}
	got, err := f.Request()
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if got.Direction != tooltip.Top || got.Alignment != tooltip.AlignCenter || got.Gap != 8 || got.ScreenMargin != 8 {
		t.Errorf("Request() = %+v, want defaults", got)
	}
	if got.TextDirection != tooltip.RTL {
		t.Errorf("TextDirection = %v, want %v", got.TextDirection, tooltip.RTL)
	}

	if _, err := (File{}).Request(); !errors.Is(err, tooltip.ErrInvalidConfig) {
		t.Errorf("Request() without geometry error = %v, want ErrInvalidConfig", err)
	}
}

func TestFile_Options(t *testing.T) {
	opts, err := sampleFile().Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	opts = append(opts, tooltip.WithRegistry(tooltip.NewRegistry()))

	anchor := &tooltip.FixedAnchor{Target: tooltip.NewRect(100, 80, 60, 20), View: tooltip.Size{Width: 400, Height: 300}}
	s := tooltip.NewManualScheduler()
	tip, err := tooltip.New(anchor, tooltip.NewMockHost(), s, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	req := tip.Request()
	if req.Direction != tooltip.Bottom || req.Gap != 4 || req.TextDirection != tooltip.RTL {
		t.Errorf("Request() = %+v, want bottom, gap 4, rtl", req)
	}

	// Wait duration came through.
	tip.PointerEnterAnchor()
	s.Advance(299 * time.Millisecond)
	if tip.State() != tooltip.Hidden {
		t.Errorf("State() = %v before wait elapsed, want %v", tip.State(), tooltip.Hidden)
	}
	s.Advance(time.Millisecond)
	if tip.State() != tooltip.Showing {
		t.Errorf("State() = %v after wait, want %v", tip.State(), tooltip.Showing)
	}
	if tip.Overlay().Arrow() == nil {
		t.Error("Arrow() = nil, want configured arrow")
	}
}

func TestFile_OptionsErrors(t *testing.T) {
	type tc struct {
		file File
	}

	tests := map[string]tc{
		"direction":      {file: File{Placement: Placement{Direction: "up"}}},
		"alignment":      {file: File{Placement: Placement{Alignment: "middle"}}},
		"text direction": {file: File{Placement: Placement{TextDirection: "ttb"}}},
		"wait":           {file: File{Triggers: Triggers{Wait: "soon"}}},
		"animation kind": {file: File{Animation: Animation{Kind: "spin"}}},
		"easing":         {file: File{Animation: Animation{Easing: "bounce"}}},
		"duration":       {file: File{Animation: Animation{Duration: "-"}}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := tt.file.Options(); !errors.Is(err, tooltip.ErrInvalidConfig) {
				t.Errorf("Options() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
