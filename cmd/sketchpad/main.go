package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/example/sketchpad/internal/appstate"
	"github.com/example/sketchpad/internal/config"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	config      *config.Config
	verbose     bool
	themeName   string
	activeTheme *theme.Theme
	stdout      io.Writer
	stdin       io.Reader
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:     program,
		config:      r.config,
		verbose:     r.verbose,
		themeName:   r.themeName,
		activeTheme: r.activeTheme,
		stdout:      r.stdout,
		stdin:       r.stdin,
	}
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWithConfig(cfg, os.Stdout, os.Stdin)
}

func newRootWithConfig(cfg *config.Config, stdout io.Writer, stdin io.Reader) *root {
	r := &root{
		fs:      flag.NewFlagSet("sketchpad", flag.ContinueOnError),
		program: "sketchpad",
		config:  cfg,
		stdout:  stdout,
		stdin:   stdin,
	}
	r.fs.BoolVar(&r.verbose, "v", false, "log session activity to stderr")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use ("+strings.Join(theme.Names(), ", ")+")")
	r.fs.Usage = usageFunc(r)
	return r
}

// palette returns the configured swatches, or the built-in ones.
func (r *root) palette() []appstate.PaletteColor {
	if len(r.config.Palette) == 0 {
		return appstate.DefaultPalette()
	}
	p := make([]appstate.PaletteColor, 0, len(r.config.Palette))
	for _, e := range r.config.Palette {
		p = append(p, appstate.PaletteColor{Name: e.Name, Color: e.Color})
	}
	return p
}

func (r *root) thicknessRange() appstate.ThicknessRange {
	return appstate.ThicknessRange{Min: r.config.Brush.MinThickness, Max: r.config.Brush.MaxThickness}
}

// scriptParser resolves palette names before CSS colour names.
func (r *root) scriptParser() sketch.Parser {
	return sketch.Parser{Palette: appstate.PaletteMap(r.palette())}
}

// newSession creates a session configured from the loaded config.
func (r *root) newSession(opts ...sketch.Option) *sketch.Session {
	base := []sketch.Option{
		sketch.WithCanvasSize(r.config.Canvas.Width, r.config.Canvas.Height),
		sketch.WithThickness(r.thicknessRange().Clamp(r.config.Brush.Thickness)),
	}
	return sketch.NewSession(append(base, opts...)...)
}

func (r *root) resolveTheme() *theme.Theme {
	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("SKETCHPAD_THEME")
	}
	if themeName == "" {
		themeName = r.config.Theme
	}

	if cfgTheme, ok := r.config.Themes[themeName]; ok {
		return cfgTheme
	}
	t, err := theme.NewLoader().Load(themeName)
	if err != nil {
		if themeName != "" && themeName != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", themeName, err)
		}
		return theme.Default()
	}
	return t
}

func (r *root) Run(args []string) error {
	if err := parseFlags(r.fs, args, r); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "paint":
		cmd, err = parsePaintCmd(subArgs, r)
	case "replay":
		cmd, err = parseReplayCmd(subArgs, r)
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "tools":
		cmd, err = parseToolsCmd(subArgs, r)
	case "thickness":
		cmd, err = parseThicknessCmd(subArgs, r)
	case "themes":
		cmd, err = parseThemesCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	if runErr := cmd.Run(); runErr != nil {
		return runErr
	}
	return nil
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
