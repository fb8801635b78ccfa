package appstate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
)

const (
	toolbarWidth  = 96
	titleHeight   = 24
	buttonHeight  = 24
	swatchSize    = 20
	swatchStep    = 22
	thicknessRow  = 18
	bottomHeight  = 24
	canvasPadding = 16
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 28, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// LabelButton is a toolbar button with a text label. It selects a tool
// when tool is set and otherwise runs onActivate.
type LabelButton struct {
	label      string
	theme      *theme.Theme
	rect       image.Rectangle
	onActivate func()
}

func (b *LabelButton) Draw(dst *image.RGBA, state ButtonState) {
	bg, fg := b.theme.ButtonBackground, b.theme.ButtonText
	switch state {
	case StateHover:
		bg = b.theme.ButtonBackgroundHover
	case StatePressed:
		bg, fg = b.theme.ButtonBackgroundActive, b.theme.ButtonTextActive
	}
	draw.Draw(dst, b.rect, &image.Uniform{bg}, image.Point{}, draw.Src)
	strokeRect(dst, b.rect, b.theme.ButtonBorder, 1)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: basicfont.Face7x13,
		Dot: fixed.P(b.rect.Min.X+6, b.rect.Min.Y+16)}
	d.DrawString(b.label)
}

func (b *LabelButton) Rect() image.Rectangle { return b.rect }

func (b *LabelButton) SetRect(r image.Rectangle) { b.rect = r }

func (b *LabelButton) Activate() {
	if b.onActivate != nil {
		b.onActivate()
	}
}

var toolLabels = map[sketch.Tool]string{
	sketch.ToolBrush:  "B:Brush",
	sketch.ToolEraser: "E:Eraser",
	sketch.ToolLasso:  "L:Lasso",
	sketch.ToolBucket: "F:Bucket",
	sketch.ToolText:   "T:Text",
}

var toolKeys = map[sketch.Tool]rune{
	sketch.ToolBrush:  'b',
	sketch.ToolEraser: 'e',
	sketch.ToolLasso:  'l',
	sketch.ToolBucket: 'f',
	sketch.ToolText:   't',
}

type hitKind int

const (
	hitNone hitKind = iota
	hitTool
	hitSwatch
	hitThickness
	hitClear
	hitShortcut
)

type hit struct {
	kind hitKind
	idx  int
}

var noHit = hit{kind: hitNone, idx: -1}

// toolbarLayout positions the toolbar controls. It is a pure function of
// the control counts so the event loop and the painter agree on it.
type toolbarLayout struct {
	title     image.Rectangle
	tools     []image.Rectangle
	swatches  []image.Rectangle
	thickness []image.Rectangle
	clear     image.Rectangle
}

func layoutToolbar(tools, swatches, presets int) toolbarLayout {
	var l toolbarLayout
	y := 0
	l.title = image.Rect(0, y, toolbarWidth, y+titleHeight)
	y += titleHeight
	for i := 0; i < tools; i++ {
		l.tools = append(l.tools, image.Rect(0, y, toolbarWidth, y+buttonHeight))
		y += buttonHeight
	}
	y += 4
	x := 4
	for i := 0; i < swatches; i++ {
		if x+swatchSize > toolbarWidth {
			x = 4
			y += swatchStep
		}
		l.swatches = append(l.swatches, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchStep
	}
	if swatches > 0 {
		y += swatchStep
	}
	y += 4
	for i := 0; i < presets; i++ {
		l.thickness = append(l.thickness, image.Rect(0, y, toolbarWidth, y+thicknessRow))
		y += thicknessRow
	}
	y += 4
	l.clear = image.Rect(0, y, toolbarWidth, y+buttonHeight)
	return l
}

func (l toolbarLayout) hitTest(p image.Point) hit {
	for _, group := range []struct {
		kind  hitKind
		rects []image.Rectangle
	}{
		{hitTool, l.tools},
		{hitSwatch, l.swatches},
		{hitThickness, l.thickness},
		{hitClear, []image.Rectangle{l.clear}},
	} {
		for i, r := range group.rects {
			if p.In(r) {
				return hit{kind: group.kind, idx: i}
			}
		}
	}
	return noHit
}

// shortcut is a clickable hint in the status bar.
type shortcut struct {
	label  string
	action string
}

var statusShortcuts = []shortcut{
	{"[/]:size", "thicker"},
	{"1-8:colour", ""},
	{"C:clear", "clear"},
	{"Q:quit", "quit"},
}

func layoutShortcuts(height int) []image.Rectangle {
	meas := &font.Drawer{Face: basicfont.Face7x13}
	x := toolbarWidth + 4
	y := height - bottomHeight + 16
	rects := make([]image.Rectangle, len(statusShortcuts))
	for i, sc := range statusShortcuts {
		w := meas.MeasureString(sc.label).Ceil()
		rects[i] = image.Rect(x-2, y-14, x+w+2, y+4)
		x = rects[i].Max.X + 8
	}
	return rects
}

func strokeRect(dst *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	src := image.NewUniform(col)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thick), src, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-thick, r.Max.X, r.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+thick, r.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-thick, r.Min.Y, r.Max.X, r.Max.Y), src, image.Point{}, draw.Src)
}

// toolbarPainter draws the toolbar and status bar. It lives on the paint
// goroutine.
type toolbarPainter struct {
	theme   *theme.Theme
	buttons []*CacheButton
	clear   *CacheButton
	preview render.StrokePainter
}

func newToolbarPainter(th *theme.Theme) *toolbarPainter {
	tp := &toolbarPainter{theme: th}
	for _, t := range sketch.Tools() {
		tp.buttons = append(tp.buttons, &CacheButton{Button: &LabelButton{label: toolLabels[t], theme: th}})
	}
	tp.clear = &CacheButton{Button: &LabelButton{label: "C:Clear", theme: th}}
	return tp
}

func (tp *toolbarPainter) draw(dst *image.RGBA, st paintState) {
	th := tp.theme
	l := layoutToolbar(len(tp.buttons), len(st.palette), len(st.presets))
	draw.Draw(dst, image.Rect(0, 0, toolbarWidth, st.height-bottomHeight), &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: basicfont.Face7x13,
		Dot: fixed.P(l.title.Min.X+6, l.title.Min.Y+16)}
	d.DrawString("Sketchpad")

	for i, cb := range tp.buttons {
		cb.SetRect(l.tools[i])
		state := StateDefault
		if sketch.Tools()[i] == st.frame.Tool {
			state = StatePressed
		} else if st.hover == (hit{hitTool, i}) {
			state = StateHover
		}
		cb.Draw(dst, state)
	}

	for i, r := range l.swatches {
		draw.Draw(dst, r, &image.Uniform{st.palette[i].Color}, image.Point{}, draw.Src)
		if st.hover == (hit{hitSwatch, i}) {
			draw.Draw(dst, r, &image.Uniform{color.RGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
		}
		if st.palette[i].Color == st.frame.Color {
			strokeRect(dst, r.Inset(-2), th.SwatchSelected, 2)
		} else {
			strokeRect(dst, r, th.SwatchBorder, 1)
		}
	}

	for i, r := range l.thickness {
		bg := th.ButtonBackground
		fg := th.ButtonText
		if st.presets[i] == st.frame.Thickness {
			bg, fg = th.ButtonBackgroundActive, th.ButtonTextActive
		} else if st.hover == (hit{hitThickness, i}) {
			bg = th.ButtonBackgroundHover
		}
		draw.Draw(dst, r, &image.Uniform{bg}, image.Point{}, draw.Src)
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: basicfont.Face7x13, Dot: fixed.P(r.Min.X+4, r.Min.Y+13)}
		d.DrawString(fmt.Sprintf("%g", st.presets[i]))
		cy := float64(r.Min.Y+r.Max.Y) / 2
		tp.preview.Paint(dst, sketch.Stroke{
			Color:     st.frame.Color,
			Thickness: min(st.presets[i], float64(thicknessRow-4)),
			Points:    []sketch.Point{{X: 40, Y: cy}, {X: float64(r.Max.X - 10), Y: cy}},
		})
	}

	tp.clear.SetRect(l.clear)
	state := StateDefault
	if st.hover.kind == hitClear {
		state = StateHover
	}
	tp.clear.Draw(dst, state)
}

func (tp *toolbarPainter) drawStatus(dst *image.RGBA, st paintState) {
	th := tp.theme
	rect := image.Rect(0, st.height-bottomHeight, st.width, st.height)
	draw.Draw(dst, rect, &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	rects := layoutShortcuts(st.height)
	for i, sc := range statusShortcuts {
		r := rects[i]
		bg := th.ButtonBackground
		if st.hover == (hit{hitShortcut, i}) {
			bg = th.ButtonBackgroundHover
		}
		draw.Draw(dst, r, &image.Uniform{bg}, image.Point{}, draw.Src)
		strokeRect(dst, r, th.ButtonBorder, 1)
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.ButtonText), Face: basicfont.Face7x13,
			Dot: fixed.P(r.Min.X+2, r.Min.Y+14)}
		d.DrawString(sc.label)
	}
	f := st.frame
	status := fmt.Sprintf("%s %s %gpx  %d strokes", f.Tool, sketch.FormatColor(f.Color), f.Thickness, len(f.Committed))
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: basicfont.Face7x13}
	w := d.MeasureString(status).Ceil()
	d.Dot = fixed.P(st.width-w-8, st.height-bottomHeight+16)
	d.DrawString(status)
}
