package main

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/example/sketchpad/internal/appstate"
	"github.com/example/sketchpad/internal/sketch"
)

type paintCmd struct {
	*root
	fs        *flag.FlagSet
	width     int
	height    int
	color     string
	thickness float64
	tool      string

	initialTool  sketch.Tool
	initialColor *color.RGBA
}

func (p *paintCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	fs := flag.NewFlagSet("paint", flag.ContinueOnError)
	c := &paintCmd{root: r.subcommand("paint"), fs: fs}
	fs.Usage = usageFunc(c)
	fs.IntVar(&c.width, "width", r.config.Window.Width, "window width in pixels")
	fs.IntVar(&c.height, "height", r.config.Window.Height, "window height in pixels")
	fs.StringVar(&c.color, "color", "", "initial colour (palette name, CSS name or #RRGGBB)")
	fs.Float64Var(&c.thickness, "thickness", r.config.Brush.Thickness, "initial stroke thickness")
	fs.StringVar(&c.tool, "tool", sketch.ToolBrush.String(), "initial tool")
	if err := parseFlags(fs, args, c); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %dx%d", c.width, c.height)
	}
	tool, err := sketch.ParseTool(c.tool)
	if err != nil {
		return nil, err
	}
	c.initialTool = tool
	if c.color != "" {
		col, err := c.scriptParser().ParseColor(c.color)
		if err != nil {
			return nil, err
		}
		c.initialColor = &col
	}
	return c, nil
}

// options assembles the window state options from the config and flags.
func (p *paintCmd) options() []appstate.Option {
	rng := p.thicknessRange()
	sessOpts := []sketch.Option{
		sketch.WithCanvasSize(p.config.Canvas.Width, p.config.Canvas.Height),
		sketch.WithThickness(rng.Clamp(p.thickness)),
		sketch.WithTool(p.initialTool),
	}
	if p.initialColor != nil {
		sessOpts = append(sessOpts, sketch.WithColor(*p.initialColor))
	}
	return []appstate.Option{
		appstate.WithSessionOptions(sessOpts...),
		appstate.WithTheme(p.activeTheme),
		appstate.WithPalette(p.palette()),
		appstate.WithThicknessRange(rng),
		appstate.WithSmoothness(p.config.Brush.Smoothness),
		appstate.WithCanvasBackground(p.config.Canvas.Background),
		appstate.WithShadow(p.config.Window.Shadow),
		appstate.WithWindowSize(p.width, p.height),
	}
}

func (p *paintCmd) Run() error {
	appstate.New(p.options()...).Run()
	return nil
}
