package tooltip

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-tooltip/internal/anim"
	"github.com/grindlemire/go-tooltip/internal/placement"
)

// Option is a functional option for configuring a Tooltip.
// Options validate their arguments eagerly; New fails on the first error.
type Option func(*config) error

// ContentBuilder produces the overlay content node. The node is opaque to
// this package and handed to the renderer as is.
type ContentBuilder func() any

// DefaultHideDebounce is how long an interactive tooltip waits after the
// pointer leaves before hiding, so the pointer can cross the gap.
const DefaultHideDebounce = 100 * time.Millisecond

type config struct {
	direction       Direction
	alignment       Alignment
	textDirection   TextDirection
	gap             float64
	crossAxisOffset float64
	screenMargin    float64

	hover        bool
	tap          bool
	interactive  bool
	wait         time.Duration
	show         time.Duration
	hideDebounce time.Duration

	animKind     AnimationKind
	animDuration time.Duration
	easing       Easing

	arrow *Arrow

	text    string
	hasText bool
	builder ContentBuilder

	controller *Controller
	registry   *Registry
	onShow     func()
	onHide     func()
	logger     *log.Logger
}

func defaultConfig() config {
	return config{
		direction:     Top,
		alignment:     AlignCenter,
		textDirection: LTR,
		gap:           8,
		screenMargin:  8,
		hover:         true,
		hideDebounce:  DefaultHideDebounce,
		animKind:      AnimationFade,
		animDuration:  150 * time.Millisecond,
		easing:        EaseOut,
	}
}

// validate checks rules that span several options.
func (c *config) validate() error {
	switch {
	case c.hasText && c.builder != nil:
		return invalid("both text and a content builder were supplied")
	case !c.hasText && c.builder == nil:
		return invalid("one of text or a content builder is required")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

func validLength(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return invalid("%s must be a finite value >= 0, got %v", name, v)
	}
	return nil
}

func validDuration(name string, d time.Duration) error {
	if d < 0 {
		return invalid("%s must not be negative, got %v", name, d)
	}
	return nil
}

// WithDirection sets the preferred side. Default is Top.
func WithDirection(d Direction) Option {
	return func(c *config) error {
		if d < placement.Top || d > placement.Right {
			return invalid("unknown direction %d", int(d))
		}
		c.direction = d
		return nil
	}
}

// WithAlignment sets the cross-axis alignment. Default is AlignCenter.
func WithAlignment(a Alignment) Option {
	return func(c *config) error {
		if a < placement.Start || a > placement.End {
			return invalid("unknown alignment %d", int(a))
		}
		c.alignment = a
		return nil
	}
}

// WithTextDirection sets the text direction used to resolve AlignStart and
// AlignEnd. TextDirectionAuto detects it from literal text. Default is LTR.
func WithTextDirection(td TextDirection) Option {
	return func(c *config) error {
		if td < placement.LTR || td > placement.Auto {
			return invalid("unknown text direction %d", int(td))
		}
		c.textDirection = td
		return nil
	}
}

// WithGap sets the distance between target and overlay. Default is 8.
func WithGap(gap float64) Option {
	return func(c *config) error {
		if err := validLength("gap", gap); err != nil {
			return err
		}
		c.gap = gap
		return nil
	}
}

// WithCrossAxisOffset shifts the overlay along the cross axis. For
// AlignEnd a positive offset moves it inward, toward the target's centre.
func WithCrossAxisOffset(offset float64) Option {
	return func(c *config) error {
		if math.IsNaN(offset) || math.IsInf(offset, 0) {
			return invalid("cross axis offset must be finite, got %v", offset)
		}
		c.crossAxisOffset = offset
		return nil
	}
}

// WithScreenMargin sets the minimum distance from the viewport edges. Default is 8.
func WithScreenMargin(margin float64) Option {
	return func(c *config) error {
		if err := validLength("screen margin", margin); err != nil {
			return err
		}
		c.screenMargin = margin
		return nil
	}
}

// WithHover enables or disables pointer hover triggers. Enabled by default.
func WithHover(enabled bool) Option {
	return func(c *config) error {
		c.hover = enabled
		return nil
	}
}

// WithTap enables or disables tap-to-toggle. Disabled by default.
func WithTap(enabled bool) Option {
	return func(c *config) error {
		c.tap = enabled
		return nil
	}
}

// WithInteractive keeps the tooltip open while the pointer is over the
// overlay itself. Disabled by default.
func WithInteractive(enabled bool) Option {
	return func(c *config) error {
		c.interactive = enabled
		return nil
	}
}

// WithWaitDuration delays hover-triggered shows. Zero shows immediately.
func WithWaitDuration(d time.Duration) Option {
	return func(c *config) error {
		if err := validDuration("wait duration", d); err != nil {
			return err
		}
		c.wait = d
		return nil
	}
}

// WithShowDuration hides the tooltip automatically after it has been
// visible for d. Zero disables auto-hide.
func WithShowDuration(d time.Duration) Option {
	return func(c *config) error {
		if err := validDuration("show duration", d); err != nil {
			return err
		}
		c.show = d
		return nil
	}
}

// WithHideDebounce sets the interactive hide delay. Default is DefaultHideDebounce.
func WithHideDebounce(d time.Duration) Option {
	return func(c *config) error {
		if err := validDuration("hide debounce", d); err != nil {
			return err
		}
		c.hideDebounce = d
		return nil
	}
}

// WithAnimation sets the show/hide transition. A zero duration or
// AnimationNone makes transitions complete synchronously.
// Default is a 150ms ease-out fade.
func WithAnimation(kind AnimationKind, d time.Duration, easing Easing) Option {
	return func(c *config) error {
		if kind < anim.None || kind > anim.Slide {
			return invalid("unknown animation kind %d", int(kind))
		}
		if easing < anim.Linear || easing > anim.EaseInOut {
			return invalid("unknown easing %d", int(easing))
		}
		if err := validDuration("animation duration", d); err != nil {
			return err
		}
		c.animKind = kind
		c.animDuration = d
		c.easing = easing
		return nil
	}
}

// WithArrow draws an arrow from the overlay toward the target.
// Width and Height must be positive and PositionRatio within [0,1].
func WithArrow(a Arrow) Option {
	return func(c *config) error {
		if err := a.Validate(); err != nil {
			return invalid("%v", err)
		}
		c.arrow = &a
		return nil
	}
}

// WithText sets literal text content. Exactly one of WithText and
// WithContent must be supplied.
func WithText(text string) Option {
	return func(c *config) error {
		c.text = text
		c.hasText = true
		return nil
	}
}

// WithContent sets a content builder. Exactly one of WithText and
// WithContent must be supplied.
func WithContent(fn ContentBuilder) Option {
	return func(c *config) error {
		if fn == nil {
			return invalid("nil content builder")
		}
		c.builder = fn
		return nil
	}
}

// WithController attaches an external controller. By default each tooltip
// gets its own.
func WithController(ctrl *Controller) Option {
	return func(c *config) error {
		if ctrl == nil {
			return invalid("nil controller")
		}
		c.controller = ctrl
		return nil
	}
}

// WithRegistry sets the single-instance registry. Default is DefaultRegistry().
func WithRegistry(r *Registry) Option {
	return func(c *config) error {
		if r == nil {
			return invalid("nil registry")
		}
		c.registry = r
		return nil
	}
}

// WithOnShow sets a callback fired once per cycle, as soon as a show starts.
func WithOnShow(fn func()) Option {
	return func(c *config) error {
		c.onShow = fn
		return nil
	}
}

// WithOnHide sets a callback fired once per cycle, when the tooltip
// becomes Hidden.
func WithOnHide(fn func()) Option {
	return func(c *config) error {
		c.onHide = fn
		return nil
	}
}

// WithLogger sets the logger for lifecycle transitions. Transitions are
// logged at debug level. Default is the TOOLTIP_DEBUG file logger.
func WithLogger(l *log.Logger) Option {
	return func(c *config) error {
		if l == nil {
			return invalid("nil logger")
		}
		c.logger = l
		return nil
	}
}
