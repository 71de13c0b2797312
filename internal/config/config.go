// Package config loads declarative tooltip configuration from TOML or YAML
// files and turns it into tooltip options and placement requests.
//
// Durations are Go duration strings ("300ms", "2s") and enums are lower-case
// names ("bottom", "start", "rtl", "slide", "ease-in-out"). Unset fields keep
// the tooltip defaults.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tooltip "github.com/grindlemire/go-tooltip"
	"github.com/grindlemire/go-tooltip/internal/anim"
	"github.com/grindlemire/go-tooltip/internal/placement"
	"github.com/grindlemire/go-tooltip/internal/textdir"
)

// Format is a config file encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// File is one tooltip configuration.
type File struct {
	Text      string    `toml:"text" yaml:"text"`
	Placement Placement `toml:"placement" yaml:"placement"`
	Triggers  Triggers  `toml:"triggers" yaml:"triggers"`
	Animation Animation `toml:"animation" yaml:"animation"`
	Arrow     *Arrow    `toml:"arrow" yaml:"arrow"`
	Geometry  *Geometry `toml:"geometry" yaml:"geometry"`
}

type Placement struct {
	Direction       string   `toml:"direction" yaml:"direction"`
	Alignment       string   `toml:"alignment" yaml:"alignment"`
	TextDirection   string   `toml:"text_direction" yaml:"text_direction"`
	Gap             *float64 `toml:"gap" yaml:"gap"`
	CrossAxisOffset *float64 `toml:"cross_axis_offset" yaml:"cross_axis_offset"`
	ScreenMargin    *float64 `toml:"screen_margin" yaml:"screen_margin"`
}

type Triggers struct {
	Hover        *bool  `toml:"hover" yaml:"hover"`
	Tap          *bool  `toml:"tap" yaml:"tap"`
	Interactive  *bool  `toml:"interactive" yaml:"interactive"`
	Wait         string `toml:"wait" yaml:"wait"`
	Show         string `toml:"show" yaml:"show"`
	HideDebounce string `toml:"hide_debounce" yaml:"hide_debounce"`
}

type Animation struct {
	Kind     string `toml:"kind" yaml:"kind"`
	Duration string `toml:"duration" yaml:"duration"`
	Easing   string `toml:"easing" yaml:"easing"`
}

type Arrow struct {
	Width         float64 `toml:"width" yaml:"width"`
	Height        float64 `toml:"height" yaml:"height"`
	PositionRatio float64 `toml:"position_ratio" yaml:"position_ratio"`
}

// Geometry is the input to a one-shot placement: the target rectangle, the
// viewport and the measured overlay size.
type Geometry struct {
	Target   Rect `toml:"target" yaml:"target"`
	Viewport Size `toml:"viewport" yaml:"viewport"`
	Overlay  Size `toml:"overlay" yaml:"overlay"`
}

type Rect struct {
	X      float64 `toml:"x" yaml:"x"`
	Y      float64 `toml:"y" yaml:"y"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

type Size struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unsupported config extension %q (want .toml, .yaml or .yml)", filepath.Ext(path))
}

// Load reads and parses the config file at path.
func Load(path string) (File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config file %q: %w", path, err)
	}
	return Parse(data, format, path)
}

// Parse decodes data in the given format. Unknown keys are rejected.
// source names the input in error messages.
func Parse(data []byte, format Format, source string) (File, error) {
	var f File
	switch format {
	case TOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return f, fmt.Errorf("parse TOML in %q: %w", source, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return f, fmt.Errorf("parse TOML in %q: unknown key %q", source, undecoded[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return f, fmt.Errorf("parse YAML in %q: %w", source, err)
		}
	default:
		return f, fmt.Errorf("unknown config format %q", format)
	}
	return f, nil
}

// Options converts the file into tooltip options. Enum and duration errors
// wrap tooltip.ErrInvalidConfig; range checks are left to the options
// themselves so both paths report the same errors.
func (f File) Options() ([]tooltip.Option, error) {
	var opts []tooltip.Option
	if f.Text != "" {
		opts = append(opts, tooltip.WithText(f.Text))
	}

	p := f.Placement
	if p.Direction != "" {
		d, err := placement.ParseDirection(p.Direction)
		if err != nil {
			return nil, invalid("placement.direction", err)
		}
		opts = append(opts, tooltip.WithDirection(d))
	}
	if p.Alignment != "" {
		a, err := placement.ParseAlignment(p.Alignment)
		if err != nil {
			return nil, invalid("placement.alignment", err)
		}
		opts = append(opts, tooltip.WithAlignment(a))
	}
	if p.TextDirection != "" {
		td, err := placement.ParseTextDirection(p.TextDirection)
		if err != nil {
			return nil, invalid("placement.text_direction", err)
		}
		opts = append(opts, tooltip.WithTextDirection(td))
	}
	if p.Gap != nil {
		opts = append(opts, tooltip.WithGap(*p.Gap))
	}
	if p.CrossAxisOffset != nil {
		opts = append(opts, tooltip.WithCrossAxisOffset(*p.CrossAxisOffset))
	}
	if p.ScreenMargin != nil {
		opts = append(opts, tooltip.WithScreenMargin(*p.ScreenMargin))
	}

	tr := f.Triggers
	if tr.Hover != nil {
		opts = append(opts, tooltip.WithHover(*tr.Hover))
	}
	if tr.Tap != nil {
		opts = append(opts, tooltip.WithTap(*tr.Tap))
	}
	if tr.Interactive != nil {
		opts = append(opts, tooltip.WithInteractive(*tr.Interactive))
	}
	for _, d := range []struct {
		name  string
		value string
		opt   func(time.Duration) tooltip.Option
	}{
		{"triggers.wait", tr.Wait, tooltip.WithWaitDuration},
		{"triggers.show", tr.Show, tooltip.WithShowDuration},
		{"triggers.hide_debounce", tr.HideDebounce, tooltip.WithHideDebounce},
	} {
		if d.value == "" {
			continue
		}
		v, err := time.ParseDuration(d.value)
		if err != nil {
			return nil, invalid(d.name, err)
		}
		opts = append(opts, d.opt(v))
	}

	if a := f.Animation; a != (Animation{}) {
		o, err := a.option()
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}

	if f.Arrow != nil {
		opts = append(opts, tooltip.WithArrow(tooltip.Arrow{
			Width:         f.Arrow.Width,
			Height:        f.Arrow.Height,
			PositionRatio: f.Arrow.PositionRatio,
		}))
	}
	return opts, nil
}

// Unset animation fields take the tooltip defaults.
func (a Animation) option() (tooltip.Option, error) {
	kind, d, easing := anim.Fade, 150*time.Millisecond, anim.EaseOut
	var err error
	if a.Kind != "" {
		if kind, err = anim.ParseKind(a.Kind); err != nil {
			return nil, invalid("animation.kind", err)
		}
	}
	if a.Duration != "" {
		if d, err = time.ParseDuration(a.Duration); err != nil {
			return nil, invalid("animation.duration", err)
		}
	}
	if a.Easing != "" {
		if easing, err = anim.ParseEasing(a.Easing); err != nil {
			return nil, invalid("animation.easing", err)
		}
	}
	return tooltip.WithAnimation(kind, d, easing), nil
}

// Request builds the placement request described by the file. It requires
// a geometry section. TextDirectionAuto is resolved against the text.
func (f File) Request() (tooltip.PlacementRequest, error) {
	if f.Geometry == nil {
		return tooltip.PlacementRequest{}, fmt.Errorf("geometry section is required: %w", tooltip.ErrInvalidConfig)
	}
	g := f.Geometry
	req := tooltip.PlacementRequest{
		Target:        tooltip.NewRect(g.Target.X, g.Target.Y, g.Target.Width, g.Target.Height),
		Viewport:      tooltip.Size{Width: g.Viewport.Width, Height: g.Viewport.Height},
		Overlay:       tooltip.Size{Width: g.Overlay.Width, Height: g.Overlay.Height},
		Direction:     tooltip.Top,
		Alignment:     tooltip.AlignCenter,
		Gap:           8,
		ScreenMargin:  8,
		TextDirection: tooltip.LTR,
	}

	p := f.Placement
	var err error
	if p.Direction != "" {
		if req.Direction, err = placement.ParseDirection(p.Direction); err != nil {
			return req, invalid("placement.direction", err)
		}
	}
	if p.Alignment != "" {
		if req.Alignment, err = placement.ParseAlignment(p.Alignment); err != nil {
			return req, invalid("placement.alignment", err)
		}
	}
	if p.TextDirection != "" {
		if req.TextDirection, err = placement.ParseTextDirection(p.TextDirection); err != nil {
			return req, invalid("placement.text_direction", err)
		}
	}
	req.TextDirection = textdir.Resolve(req.TextDirection, f.Text)
	if p.Gap != nil {
		req.Gap = *p.Gap
	}
	if p.CrossAxisOffset != nil {
		req.CrossAxisOffset = *p.CrossAxisOffset
	}
	if p.ScreenMargin != nil {
		req.ScreenMargin = *p.ScreenMargin
	}
	if req.Gap < 0 || req.ScreenMargin < 0 {
		return req, fmt.Errorf("gap and screen margin must be >= 0: %w", tooltip.ErrInvalidConfig)
	}
	return req, nil
}

func invalid(field string, err error) error {
	return fmt.Errorf("%s: %v: %w", field, err, tooltip.ErrInvalidConfig)
}
