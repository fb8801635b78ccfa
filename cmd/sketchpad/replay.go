package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/sketch"
)

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, "; ") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type replayCmd struct {
	*root
	fs      *flag.FlagSet
	script  string
	exprs   stringList
	preview int
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	c := &replayCmd{root: r.subcommand("replay"), fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.script, "script", "", "action script to replay, - for stdin")
	fs.Var(&c.exprs, "e", "action line to apply after the script (repeatable)")
	fs.IntVar(&c.preview, "preview", 0, "print an ASCII preview this many columns wide")
	if err := parseFlags(fs, args, c); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 || (c.script == "" && len(c.exprs) == 0) {
		return nil, &UsageError{of: c}
	}
	if c.preview < 0 {
		return nil, fmt.Errorf("preview width must not be negative, got %d", c.preview)
	}
	return c, nil
}

// actions reads the script and the -e lines in order.
func (c *replayCmd) actions() ([]sketch.Action, error) {
	p := c.scriptParser()
	var out []sketch.Action
	if c.script != "" {
		var src io.Reader = c.stdin
		name := "stdin"
		if c.script != "-" {
			f, err := os.Open(c.script)
			if err != nil {
				return nil, fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			src = f
			name = c.script
		}
		acts, err := p.ParseScript(src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, acts...)
	}
	for i, line := range c.exprs {
		a, err := p.ParseAction(line)
		if err != nil {
			return nil, fmt.Errorf("-e #%d: %w", i+1, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (c *replayCmd) Run() error {
	acts, err := c.actions()
	if err != nil {
		return err
	}
	s := c.newSession()
	defer s.Close()
	ctx := context.Background()
	if err := replay(ctx, s, acts); err != nil {
		return err
	}
	writeSummary(c.stdout, s)
	if c.preview > 0 {
		img := render.Render(s.Snapshot(), c.config.Brush.Smoothness)
		fmt.Fprint(c.stdout, render.ASCII(img, c.preview))
	}
	return nil
}

// replay applies acts in order. Fills are awaited as they are requested so
// that later actions see their result.
func replay(ctx context.Context, s *sketch.Session, acts []sketch.Action) error {
	for _, a := range acts {
		s.Apply(a)
		if _, ok := a.(sketch.RequestFill); ok {
			if err := s.Wait(ctx); err != nil {
				return fmt.Errorf("%s: %w", a, err)
			}
		}
	}
	return nil
}

// writeSummary prints the session state, one "key: value" per line.
func writeSummary(w io.Writer, s *sketch.Session) {
	f := s.Snapshot()
	fmt.Fprintf(w, "tool: %s\n", f.Tool)
	fmt.Fprintf(w, "color: %s\n", sketch.FormatColor(f.Color))
	fmt.Fprintf(w, "thickness: %g\n", f.Thickness)
	fmt.Fprintf(w, "strokes: %d\n", len(f.Committed))
	if f.Current != nil {
		fmt.Fprintf(w, "drawing: %d points\n", len(f.Current.Points))
	} else {
		fmt.Fprintln(w, "drawing: no")
	}
	if f.Bitmap == nil {
		fmt.Fprintln(w, "bitmap: none")
		return
	}
	b := f.Bitmap.Bounds()
	white := color.RGBA{255, 255, 255, 255}
	painted := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if f.Bitmap.RGBAAt(x, y) != white {
				painted++
			}
		}
	}
	fmt.Fprintf(w, "bitmap: %dx%d, %d filled pixels\n", b.Dx(), b.Dy(), painted)
}
