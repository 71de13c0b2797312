// Package termhost hosts tooltips in a terminal. It provides a Bubble Tea
// model with a few anchors, a pointer driven by the mouse or the arrow keys
// and a Lip Gloss renderer for the overlays.
package termhost

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	tooltip "github.com/grindlemire/go-tooltip"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// anchor is one labelled target in the preview.
type anchor struct {
	name    string
	label   string
	layout  func(w, h int) tooltip.Rect
	rect    tooltip.Rect
	view    tooltip.Size
	mounted bool

	tip         *tooltip.Tooltip
	overAnchor  bool
	overOverlay bool
}

func (a *anchor) Rect() tooltip.Rect     { return a.rect }
func (a *anchor) Viewport() tooltip.Size { return a.view }

type anchorDef struct {
	name   string
	label  string
	layout func(w, h int) tooltip.Rect
	opts   []tooltip.Option
}

func buttonRect(x, y int, label string) tooltip.Rect {
	return tooltip.NewRect(float64(x), float64(y), float64(len([]rune(label))), 1)
}

var previewAnchors = []anchorDef{
	{
		name:  "save",
		label: "[ Save ]",
		layout: func(w, h int) tooltip.Rect {
			return buttonRect(w/2-4, 0, "[ Save ]")
		},
		opts: []tooltip.Option{
			tooltip.WithText("Save changes (no room above, so it flips)"),
		},
	},
	{
		name:  "help",
		label: "[ Help ]",
		layout: func(w, h int) tooltip.Rect {
			return buttonRect(w/2-4, h/2, "[ Help ]")
		},
		opts: []tooltip.Option{
			tooltip.WithText("Interactive: move onto me, I stay"),
			tooltip.WithDirection(tooltip.Right),
			tooltip.WithInteractive(true),
			tooltip.WithWaitDuration(200 * time.Millisecond),
		},
	},
	{
		name:  "delete",
		label: "[ Delete ]",
		layout: func(w, h int) tooltip.Rect {
			return buttonRect(w-11, h-3, "[ Delete ]")
		},
		opts: []tooltip.Option{
			tooltip.WithText("Tap to toggle. Hides by itself after 3s"),
			tooltip.WithDirection(tooltip.Right),
			tooltip.WithAlignment(tooltip.AlignEnd),
			tooltip.WithTap(true),
			tooltip.WithShowDuration(3 * time.Second),
		},
	},
	{
		name:  "rtl",
		label: "[ שלום ]",
		layout: func(w, h int) tooltip.Rect {
			return buttonRect(2, h-3, "[ שלום ]")
		},
		opts: []tooltip.Option{
			tooltip.WithText("שלום עולם"),
			tooltip.WithTextDirection(tooltip.TextDirectionAuto),
			tooltip.WithAlignment(tooltip.AlignStart),
		},
	},
}

// Model is the preview's Bubble Tea model.
type Model struct {
	clock   *Clock
	host    *Host
	reg     *tooltip.Registry
	mounts  *tooltip.Mounts
	anchors []*anchor
	log     *log.Logger

	width, height int
	pointer       tooltip.Point
	view          string
	changed       bool
}

var _ tea.Model = (*Model)(nil)

// NewModel creates the preview with its anchors. extra is applied to every
// tooltip after its own options.
func NewModel(logger *log.Logger, extra ...tooltip.Option) (*Model, error) {
	m := &Model{
		clock:   NewClock(),
		host:    NewHost(),
		reg:     tooltip.NewRegistry(),
		mounts:  tooltip.NewMounts(),
		log:     logger,
		width:   defaultWidth,
		height:  defaultHeight,
		pointer: tooltip.Point{X: 1, Y: 1},
		changed: true,
	}

	base := []tooltip.Option{
		tooltip.WithGap(1),
		tooltip.WithScreenMargin(1),
		tooltip.WithArrow(tooltip.Arrow{Width: 1, Height: 1, PositionRatio: 0.5}),
		tooltip.WithAnimation(tooltip.AnimationFade, 150*time.Millisecond, tooltip.EaseOut),
		tooltip.WithRegistry(m.reg),
		tooltip.WithLogger(logger),
	}

	for _, def := range previewAnchors {
		a := &anchor{name: def.name, label: def.label, layout: def.layout, mounted: true}
		a.rect = def.layout(m.width, m.height)
		a.view = tooltip.Size{Width: float64(m.width), Height: float64(m.height)}

		opts := append(append(append([]tooltip.Option{}, base...), def.opts...), extra...)
		tip, err := tooltip.New(a, m.host, m.clock, opts...)
		if err != nil {
			return nil, fmt.Errorf("anchor %s: %w", def.name, err)
		}
		a.tip = tip
		m.anchors = append(m.anchors, a)
	}
	m.sync()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.clock.Cmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.changed = true
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.close()
			return m, tea.Quit
		case "up", "k":
			m.movePointer(0, -1)
		case "down", "j":
			m.movePointer(0, 1)
		case "left", "h":
			m.movePointer(-1, 0)
		case "right", "l":
			m.movePointer(1, 0)
		case " ", "space", "enter":
			m.tap()
		case "esc":
			m.reg.HideAll()
		case "d":
			m.toggleMounted("delete")
		}
	case tea.MouseMsg:
		m.setPointer(float64(msg.X), float64(msg.Y))
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.tap()
		}
	case tickMsg:
		m.clock.advance(time.Time(msg))
	}

	m.sync()
	return m, m.clock.Cmd()
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.view
}

func (m *Model) movePointer(dx, dy float64) {
	m.setPointer(m.pointer.X+dx, m.pointer.Y+dy)
}

func (m *Model) setPointer(x, y float64) {
	x = min(max(x, 0), float64(m.width-1))
	y = min(max(y, 0), float64(m.height-1))
	if x == m.pointer.X && y == m.pointer.Y {
		return
	}
	m.pointer = tooltip.Point{X: x, Y: y}
	m.changed = true
	m.updateHover()
}

func (m *Model) tap() {
	for _, a := range m.anchors {
		if a.mounted && a.rect.Contains(m.pointer) {
			a.tip.Handle(tooltip.TapAnchor)
		}
	}
}

func (m *Model) toggleMounted(name string) {
	for _, a := range m.anchors {
		if a.name == name {
			a.mounted = !a.mounted
			a.overAnchor, a.overOverlay = false, false
			m.log.Debug("anchor mount toggled", "anchor", name, "mounted", a.mounted)
		}
	}
	m.changed = true
}

// updateHover turns pointer position changes into enter and exit triggers.
// All exits are delivered before any enter.
func (m *Model) updateHover() {
	type edge struct {
		a       *anchor
		trigger tooltip.Trigger
	}
	var exits, enters []edge

	for _, a := range m.anchors {
		if !a.mounted {
			continue
		}
		over := a.rect.Contains(m.pointer)
		if over != a.overAnchor {
			a.overAnchor = over
			if over {
				enters = append(enters, edge{a, tooltip.PointerEnterAnchor})
			} else {
				exits = append(exits, edge{a, tooltip.PointerExitAnchor})
			}
		}

		overOverlay := false
		if o := a.tip.Overlay(); o != nil {
			overOverlay = m.host.Bounds(o).Contains(m.pointer)
		}
		if overOverlay != a.overOverlay {
			a.overOverlay = overOverlay
			if overOverlay {
				enters = append(enters, edge{a, tooltip.PointerEnterOverlay})
			} else {
				exits = append(exits, edge{a, tooltip.PointerExitOverlay})
			}
		}
	}

	for _, e := range append(exits, enters...) {
		m.log.Debug("pointer", "anchor", e.a.name, "trigger", e.trigger)
		e.a.tip.Handle(e.trigger)
	}
}

// sync runs one build pass: re-layout anchors, mark the mounted ones, sweep
// the rest, then measure and place every overlay and refresh hover state.
func (m *Model) sync() {
	view := tooltip.Size{Width: float64(m.width), Height: float64(m.height)}
	for _, a := range m.anchors {
		a.rect = a.layout(m.width, m.height)
		a.view = view
		if a.mounted {
			m.mounts.Mark(a.tip)
		}
	}
	if n := m.mounts.Sweep(); n > 0 {
		m.log.Debug("swept unmounted tooltips", "count", n)
	}
	for _, a := range m.anchors {
		a.tip.Layout()
	}
	m.host.measure()
	// Overlays may have appeared or moved under a resting pointer.
	m.updateHover()

	if m.host.takeDirty() || m.changed {
		m.changed = false
		m.view = m.render()
	}
}

func (m *Model) render() string {
	c := newCanvas(m.width, m.height)
	for _, a := range m.anchors {
		if !a.mounted {
			continue
		}
		st := styleAnchor
		if a.overAnchor {
			st = styleAnchorHot
		}
		c.text(int(a.rect.X), int(a.rect.Y), a.label, st)
	}
	for _, o := range m.host.Overlays() {
		drawOverlay(c, o)
	}
	c.text(0, m.height-1, "mouse/arrows move · space tap · d toggle delete · esc hide all · q quit", styleHelp)
	c.set(int(m.pointer.X), int(m.pointer.Y), '+', stylePointer)
	return c.String()
}

// close disposes every tooltip so no callbacks outlive the program.
func (m *Model) close() {
	for _, a := range m.anchors {
		m.mounts.Unmount(a.tip)
	}
}
