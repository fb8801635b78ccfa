package main

import (
	"flag"
	"fmt"
	"maps"
	"slices"

	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ContinueOnError)
	cmd := &colorsCmd{root: r.subcommand("colors"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := parseFlags(fs, args, cmd); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	palette := c.palette()
	fmt.Fprintln(c.stdout, "available colors:")
	for i, pc := range palette {
		fmt.Fprintf(c.stdout, "  %d: %-8s %s\n", i+1, pc.Name, sketch.FormatColor(pc.Color))
	}
	fmt.Fprintln(c.stdout, "scripts also accept CSS colour names and #RRGGBB[AA]")
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *colorsCmd) Template() string {
	return "colors.txt"
}

type toolsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseToolsCmd(args []string, r *root) (*toolsCmd, error) {
	fs := flag.NewFlagSet("tools", flag.ContinueOnError)
	cmd := &toolsCmd{root: r.subcommand("tools"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := parseFlags(fs, args, cmd); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *toolsCmd) Run() error {
	fmt.Fprintln(c.stdout, "available tools:")
	for _, t := range sketch.Tools() {
		var note string
		switch {
		case t.Draws():
			note = "draws strokes"
		case t == sketch.ToolBucket:
			note = "flood fills the bitmap"
		default:
			note = "selectable, no canvas effect"
		}
		fmt.Fprintf(c.stdout, "  %-7s %s\n", t, note)
	}
	return nil
}

func (c *toolsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *toolsCmd) Template() string {
	return "tools.txt"
}

type thicknessCmd struct {
	*root
	fs *flag.FlagSet
}

func parseThicknessCmd(args []string, r *root) (*thicknessCmd, error) {
	fs := flag.NewFlagSet("thickness", flag.ContinueOnError)
	cmd := &thicknessCmd{root: r.subcommand("thickness"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := parseFlags(fs, args, cmd); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *thicknessCmd) Run() error {
	rng := c.thicknessRange()
	def := rng.Clamp(c.config.Brush.Thickness)
	fmt.Fprintf(c.stdout, "thickness range: %g-%g\n", rng.Min, rng.Max)
	for _, v := range rng.Presets() {
		marker := " "
		if v == def {
			marker = "*"
		}
		fmt.Fprintf(c.stdout, "%s %g\n", marker, v)
	}
	return nil
}

func (c *thicknessCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *thicknessCmd) Template() string {
	return "thickness.txt"
}

type themesCmd struct {
	*root
	fs *flag.FlagSet
}

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := flag.NewFlagSet("themes", flag.ContinueOnError)
	cmd := &themesCmd{root: r.subcommand("themes"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := parseFlags(fs, args, cmd); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *themesCmd) Run() error {
	fmt.Fprintln(c.stdout, "built-in themes:")
	for _, name := range theme.Names() {
		fmt.Fprintf(c.stdout, "  %s\n", name)
	}
	if len(c.config.Themes) > 0 {
		fmt.Fprintln(c.stdout, "themes from config:")
		for _, name := range slices.Sorted(maps.Keys(c.config.Themes)) {
			fmt.Fprintf(c.stdout, "  %s\n", name)
		}
	}
	return nil
}

func (c *themesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *themesCmd) Template() string {
	return "themes.txt"
}
