package sketch

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parser turns action script lines into actions.
//
// A script holds one action per line:
//
//	init 1080 1920
//	tool brush
//	color red
//	thickness 12
//	begin
//	move 10 20
//	end
//	fill 5 5
//	clear
//
// Blank lines and lines starting with # are ignored.
type Parser struct {
	// Palette names are resolved before the CSS colour names.
	Palette map[string]color.RGBA
}

// ParseAction parses a single script line with the default parser.
func ParseAction(line string) (Action, error) {
	return Parser{}.ParseAction(line)
}

// ParseScript parses a whole script with the default parser.
func ParseScript(r io.Reader) ([]Action, error) {
	return Parser{}.ParseScript(r)
}

// ParseScript reads actions from r. Errors carry the line number.
func (p Parser) ParseScript(r io.Reader) ([]Action, error) {
	var actions []Action
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a, err := p.ParseAction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		actions = append(actions, a)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return actions, nil
}

// ParseAction parses one line such as "move 10 20".
func (p Parser) ParseAction(line string) (Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty action")
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]
	switch verb {
	case "tool":
		if len(args) != 1 {
			return nil, fmt.Errorf("tool requires a name")
		}
		t, err := ParseTool(args[0])
		if err != nil {
			return nil, err
		}
		return SelectTool{Tool: t}, nil
	case "color", "colour":
		if len(args) != 1 {
			return nil, fmt.Errorf("color requires a value")
		}
		c, err := p.ParseColor(args[0])
		if err != nil {
			return nil, err
		}
		return SelectColor{Color: c}, nil
	case "thickness", "width":
		vals, err := expectFloats(args, 1, verb)
		if err != nil {
			return nil, err
		}
		if !validThickness(vals[0]) {
			return nil, fmt.Errorf("thickness must be positive, got %v", args[0])
		}
		return SetThickness{Width: vals[0]}, nil
	case "begin":
		return BeginStroke{}, expectNone(args, verb)
	case "move", "extend":
		vals, err := expectFloats(args, 2, verb)
		if err != nil {
			return nil, err
		}
		return ExtendStroke{At: Point{vals[0], vals[1]}}, nil
	case "end":
		return EndStroke{}, expectNone(args, verb)
	case "clear":
		return Clear{}, expectNone(args, verb)
	case "fill":
		vals, err := expectFloats(args, 2, verb)
		if err != nil {
			return nil, err
		}
		return RequestFill{At: Point{vals[0], vals[1]}}, nil
	case "init":
		if len(args) != 2 {
			return nil, fmt.Errorf("init requires width and height")
		}
		w, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", args[0])
		}
		h, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", args[1])
		}
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("init size must be positive, got %dx%d", w, h)
		}
		return InitBitmap{Width: w, Height: h}, nil
	}
	return nil, fmt.Errorf("unknown action %q", fields[0])
}

func expectNone(args []string, verb string) error {
	if len(args) != 0 {
		return fmt.Errorf("%s takes no arguments", verb)
	}
	return nil
}

func expectFloats(args []string, n int, verb string) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d numeric arguments", verb, n)
	}
	vals := make([]float64, n)
	for i, raw := range args {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

// ParseColor accepts a palette name, a CSS colour name or #RRGGBB[AA].
func (p Parser) ParseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	for name, c := range p.Palette {
		if strings.EqualFold(name, spec) {
			return c, nil
		}
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	return ParseHexColor(spec)
}

// ParseHexColor parses #RRGGBB or #RRGGBBAA. The channels are read as
// non-premultiplied and returned premultiplied.
func ParseHexColor(s string) (color.RGBA, error) {
	spec := strings.TrimSpace(s)
	if !strings.HasPrefix(spec, "#") || (len(spec) != 7 && len(spec) != 9) {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	var comps [4]uint8
	comps[3] = 0xff
	for i := 0; i < (len(spec)-1)/2; i++ {
		v, err := strconv.ParseUint(spec[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		comps[i] = uint8(v)
	}
	n := color.NRGBA{comps[0], comps[1], comps[2], comps[3]}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}

// FormatColor renders c as #RRGGBB, or as non-premultiplied #RRGGBBAA when
// it is translucent.
func FormatColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}
