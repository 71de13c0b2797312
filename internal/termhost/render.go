package termhost

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	tooltip "github.com/grindlemire/go-tooltip"
)

type style int

const (
	stylePlain style = iota
	styleAnchor
	styleAnchorHot
	styleOverlayDim
	styleOverlayMid
	styleOverlay
	stylePointer
	styleHelp
)

var (
	colorCyan  = lipgloss.Color("#00D7FF")
	colorWhite = lipgloss.Color("#FFFFFF")
	colorGray  = lipgloss.Color("#A8A8A8")
	colorDim   = lipgloss.Color("#585858")
	colorMid   = lipgloss.Color("#8A8A8A")
	colorGold  = lipgloss.Color("#FFD75F")
)

var styles = map[style]lipgloss.Style{
	stylePlain:      lipgloss.NewStyle(),
	styleAnchor:     lipgloss.NewStyle().Foreground(colorGray),
	styleAnchorHot:  lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
	styleOverlayDim: lipgloss.NewStyle().Foreground(colorDim),
	styleOverlayMid: lipgloss.NewStyle().Foreground(colorMid),
	styleOverlay:    lipgloss.NewStyle().Foreground(colorWhite),
	stylePointer:    lipgloss.NewStyle().Bold(true).Foreground(colorGold),
	styleHelp:       lipgloss.NewStyle().Foreground(colorDim),
}

var arrowGlyphs = map[tooltip.Direction]rune{
	tooltip.Top:    '▼',
	tooltip.Bottom: '▲',
	tooltip.Left:   '▶',
	tooltip.Right:  '◀',
}

type cell struct {
	r     rune
	style style
}

// canvas is a fixed grid of styled cells. Writes outside it are dropped.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, r rune, s style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, style: s}
}

func (c *canvas) text(x, y int, s string, st style) {
	for _, r := range s {
		c.set(x, y, r, st)
		x++
	}
}

// box draws a rounded lipgloss border around text with one cell of padding.
func (c *canvas) box(x, y int, text string, st style) {
	b := lipgloss.RoundedBorder()
	inner := lipgloss.Width(text) + 2

	c.text(x, y, b.TopLeft+strings.Repeat(b.Top, inner)+b.TopRight, st)
	c.text(x, y+1, b.Left+" "+text+" "+b.Right, st)
	c.text(x, y+2, b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight, st)
}

// String renders the grid, one lipgloss render per run of equal style.
func (c *canvas) String() string {
	var out strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		cur := stylePlain
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == stylePlain {
				out.WriteString(run.String())
			} else {
				out.WriteString(styles[cur].Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.style != cur {
				flush()
				cur = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return out.String()
}

// drawOverlay paints o's box and arrow. Opacity picks the shade; a fully
// transparent overlay is skipped.
func drawOverlay(c *canvas, o *tooltip.Overlay) {
	f := o.Frame()
	var st style
	switch {
	case f.Opacity <= 0:
		return
	case f.Opacity < 0.34:
		st = styleOverlayDim
	case f.Opacity < 0.67:
		st = styleOverlayMid
	default:
		st = styleOverlay
	}

	p := o.Position()
	c.box(int(math.Round(p.X)), int(math.Round(p.Y)), label(o), st)

	if a := o.Arrow(); a != nil {
		// The glyph sits in the gap, halfway between base and tip.
		x := int(math.Floor((a.Base.X + a.Tip.X) / 2))
		y := int(math.Floor((a.Base.Y + a.Tip.Y) / 2))
		c.set(x, y, arrowGlyphs[a.Direction], st)
	}
}
