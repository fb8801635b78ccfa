package sketch

import (
	"image/color"
	"strings"
	"testing"
)

const sampleScript = `# two strokes and a fill
init 16 16
tool brush
color red
thickness 6
begin
move 1 1
move 10 10
end
tool eraser
begin
move 2.5 3
end
tool bucket
color #00FF0080
fill 14 1
`

func TestParseScriptAndApply(t *testing.T) {
	actions, err := ParseScript(strings.NewReader(sampleScript))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(actions) != 15 {
		t.Fatalf("parsed %d actions, want 15", len(actions))
	}

	s := newTestSession(t)
	for _, a := range actions {
		s.Apply(a)
	}
	waitFills(t, s)

	f := s.Snapshot()
	if f.Width != 16 || f.Height != 16 {
		t.Fatalf("canvas %dx%d", f.Width, f.Height)
	}
	if len(f.Committed) != 2 {
		t.Fatalf("committed %d strokes", len(f.Committed))
	}
	first, second := f.Committed[0], f.Committed[1]
	if first.Color != red || first.Thickness != 6 || len(first.Points) != 2 || first.Eraser {
		t.Fatalf("first stroke %+v", first)
	}
	if !second.Eraser || second.Points[0] != (Point{2.5, 3}) {
		t.Fatalf("second stroke %+v", second)
	}
	want := color.RGBA{0, 0x80, 0, 0x80}
	if got := f.Bitmap.RGBAAt(0, 15); got != want {
		t.Fatalf("filled pixel %v, want %v", got, want)
	}
}

func TestActionStringRoundTrip(t *testing.T) {
	actions := []Action{
		SelectTool{Tool: ToolBucket},
		SelectColor{Color: color.RGBA{0x12, 0x34, 0x56, 0xff}},
		SelectColor{Color: color.RGBA{1, 2, 3, 4}},
		SetThickness{Width: 12.5},
		BeginStroke{},
		ExtendStroke{At: Point{3, 4.25}},
		EndStroke{},
		Clear{},
		RequestFill{At: Point{7, 8}},
		InitBitmap{Width: 1080, Height: 1920},
	}
	for _, a := range actions {
		got, err := ParseAction(a.String())
		if err != nil {
			t.Fatalf("parse %q: %v", a.String(), err)
		}
		if got != a {
			t.Fatalf("round trip of %q gave %#v", a.String(), got)
		}
	}
}

func TestParseScriptReportsLine(t *testing.T) {
	_, err := ParseScript(strings.NewReader("begin\n\nmove 1\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error %q does not name line 3", err)
	}
}

func TestParseActionErrors(t *testing.T) {
	for _, line := range []string{
		"jump",
		"tool",
		"tool spray",
		"color",
		"color #12",
		"thickness -1",
		"thickness x",
		"begin now",
		"fill 1",
		"init 0 10",
		"init a 10",
	} {
		if _, err := ParseAction(line); err == nil {
			t.Fatalf("expected error for %q", line)
		}
	}
}

func TestParserPaletteBeforeColorNames(t *testing.T) {
	p := Parser{Palette: map[string]color.RGBA{"Green": {0, 0xff, 0, 0xff}}}
	c, err := p.ParseColor("green")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != (color.RGBA{0, 0xff, 0, 0xff}) {
		t.Fatalf("green = %v", c)
	}
	a, err := ParseAction("color green")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a.(SelectColor).Color != (color.RGBA{0, 0x80, 0, 0xff}) {
		t.Fatalf("css green = %v", a)
	}
}

func TestParseHexColorPremultiplies(t *testing.T) {
	c, err := ParseHexColor("#00FF0080")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{0, 0x80, 0, 0x80}) {
		t.Fatalf("#00FF0080 = %v", c)
	}
	if c.G > c.A {
		t.Fatalf("channel exceeds alpha: %v", c)
	}
}

func TestFormatColor(t *testing.T) {
	if got := FormatColor(color.RGBA{255, 0, 16, 255}); got != "#FF0010" {
		t.Fatalf("opaque = %s", got)
	}
	if got := FormatColor(color.RGBA{0, 0x80, 0, 0x80}); got != "#00FF0080" {
		t.Fatalf("translucent = %s", got)
	}
}
