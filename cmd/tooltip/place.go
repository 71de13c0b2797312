package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	tooltip "github.com/grindlemire/go-tooltip"
	"github.com/grindlemire/go-tooltip/internal/config"
)

type placeFlags struct {
	configPath    string
	text          string
	target        string
	viewport      string
	overlay       string
	direction     string
	alignment     string
	textDirection string
	gap           float64
	offset        float64
	margin        float64
	arrow         string
}

// placeOutput is the JSON form of one placement.
type placeOutput struct {
	Direction string       `json:"direction"`
	Alignment string       `json:"alignment"`
	Flipped   bool         `json:"flipped"`
	Position  pointJSON    `json:"position"`
	MaxSize   sizeJSON     `json:"max_size"`
	Arrow     *arrowOutput `json:"arrow,omitempty"`
}

type arrowOutput struct {
	Tip  pointJSON `json:"tip"`
	Base pointJSON `json:"base"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type sizeJSON struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func newPlaceCmd() *cobra.Command {
	var f placeFlags

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute one placement and print it as JSON",
		Long: `Compute where a tooltip goes for a target rectangle inside a viewport.

Geometry and placement settings come from --config (TOML or YAML) and/or
flags; flags win. Rectangles are "x,y,width,height" and sizes "width,height".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := f.file(cmd)
			if err != nil {
				return err
			}
			out, err := place(file)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("placed", "direction", out.Direction, "x", out.Position.X, "y", out.Position.Y)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	fl.StringVar(&f.text, "text", "", "tooltip text, used by --text-direction auto")
	fl.StringVar(&f.target, "target", "", "target rectangle x,y,width,height")
	fl.StringVar(&f.viewport, "viewport", "", "viewport size width,height")
	fl.StringVar(&f.overlay, "overlay", "", "overlay size width,height")
	fl.StringVarP(&f.direction, "direction", "d", "", "preferred side: top, bottom, left or right")
	fl.StringVarP(&f.alignment, "alignment", "a", "", "cross-axis alignment: start, center or end")
	fl.StringVar(&f.textDirection, "text-direction", "", "ltr, rtl or auto")
	fl.Float64Var(&f.gap, "gap", 8, "distance between target and overlay")
	fl.Float64Var(&f.offset, "offset", 0, "cross-axis offset")
	fl.Float64Var(&f.margin, "margin", 8, "minimum distance from the viewport edges")
	fl.StringVar(&f.arrow, "arrow", "", "arrow width,height,position-ratio")
	return cmd
}

// file loads --config when given and overlays every flag the user set.
func (f *placeFlags) file(cmd *cobra.Command) (config.File, error) {
	var file config.File
	if f.configPath != "" {
		var err error
		if file, err = config.Load(f.configPath); err != nil {
			return file, err
		}
		loggerFromContext(cmd.Context()).Debug("loaded config", "path", f.configPath)
	}

	changed := cmd.Flags().Changed
	if changed("text") {
		file.Text = f.text
	}
	if changed("direction") {
		file.Placement.Direction = f.direction
	}
	if changed("alignment") {
		file.Placement.Alignment = f.alignment
	}
	if changed("text-direction") {
		file.Placement.TextDirection = f.textDirection
	}
	if changed("gap") {
		file.Placement.Gap = &f.gap
	}
	if changed("offset") {
		file.Placement.CrossAxisOffset = &f.offset
	}
	if changed("margin") {
		file.Placement.ScreenMargin = &f.margin
	}

	if changed("target") || changed("viewport") || changed("overlay") {
		if file.Geometry == nil {
			file.Geometry = &config.Geometry{}
		}
	}
	if changed("target") {
		v, err := parseFloats("target", f.target, 4)
		if err != nil {
			return file, err
		}
		file.Geometry.Target = config.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
	}
	if changed("viewport") {
		v, err := parseFloats("viewport", f.viewport, 2)
		if err != nil {
			return file, err
		}
		file.Geometry.Viewport = config.Size{Width: v[0], Height: v[1]}
	}
	if changed("overlay") {
		v, err := parseFloats("overlay", f.overlay, 2)
		if err != nil {
			return file, err
		}
		file.Geometry.Overlay = config.Size{Width: v[0], Height: v[1]}
	}
	if changed("arrow") {
		v, err := parseFloats("arrow", f.arrow, 3)
		if err != nil {
			return file, err
		}
		file.Arrow = &config.Arrow{Width: v[0], Height: v[1], PositionRatio: v[2]}
	}
	return file, nil
}

func place(file config.File) (placeOutput, error) {
	req, err := file.Request()
	if err != nil {
		return placeOutput{}, err
	}
	res := tooltip.Place(req)
	out := placeOutput{
		Direction: res.Direction.String(),
		Alignment: tooltip.ResolveAlignment(res.Direction, req.Alignment, req.TextDirection).String(),
		Flipped:   res.Direction != req.Direction,
		Position:  pointJSON{X: res.Position.X, Y: res.Position.Y},
		MaxSize:   sizeJSON{Width: res.MaxSize.Width, Height: res.MaxSize.Height},
	}

	if file.Arrow != nil {
		a := tooltip.Arrow{Width: file.Arrow.Width, Height: file.Arrow.Height, PositionRatio: file.Arrow.PositionRatio}
		if err := a.Validate(); err != nil {
			return placeOutput{}, fmt.Errorf("%v: %w", err, tooltip.ErrInvalidConfig)
		}
		g := tooltip.ArrowFor(req, res, a)
		out.Arrow = &arrowOutput{
			Tip:  pointJSON{X: g.Tip.X, Y: g.Tip.Y},
			Base: pointJSON{X: g.Base.X, Y: g.Base.Y},
		}
	}
	return out, nil
}

func parseFloats(name, s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("--%s: want %d comma-separated numbers, got %q", name, n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", name, err)
		}
		out[i] = v
	}
	return out, nil
}
