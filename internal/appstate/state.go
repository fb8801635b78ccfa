package appstate

import (
	"context"
	"image"
	"image/color"
	"log"
	"sync"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
)

// AppState holds the drawing window configuration and its session.
type AppState struct {
	Title      string
	Width      int
	Height     int
	Theme      *theme.Theme
	Palette    []PaletteColor
	Thickness  ThicknessRange
	Smoothness float64
	Background color.RGBA
	Shadow     bool

	session  *sketch.Session
	sessOpts []sketch.Option
	updateCh chan struct{}

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithSessionOptions passes options through to the drawing session.
func WithSessionOptions(opts ...sketch.Option) Option {
	return func(a *AppState) { a.sessOpts = append(a.sessOpts, opts...) }
}

// WithTheme sets the colours used for window chrome.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithPalette replaces the swatches shown in the toolbar.
func WithPalette(p []PaletteColor) Option { return func(a *AppState) { a.Palette = p } }

// WithThicknessRange bounds the selectable stroke thickness.
func WithThicknessRange(r ThicknessRange) Option { return func(a *AppState) { a.Thickness = r } }

// WithSmoothness sets the curve smoothing threshold in canvas pixels.
func WithSmoothness(v float64) Option { return func(a *AppState) { a.Smoothness = v } }

// WithCanvasBackground sets the colour behind the fill bitmap.
func WithCanvasBackground(c color.RGBA) Option { return func(a *AppState) { a.Background = c } }

// WithShadow toggles the drop shadow around the page.
func WithShadow(on bool) Option { return func(a *AppState) { a.Shadow = on } }

// WithWindowSize sets the initial window size in pixels.
func WithWindowSize(w, h int) Option {
	return func(a *AppState) {
		if w > 0 && h > 0 {
			a.Width, a.Height = w, h
		}
	}
}

// WithTitle sets the window title.
func WithTitle(t string) Option { return func(a *AppState) { a.Title = t } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState and its drawing session.
func New(opts ...Option) *AppState {
	a := &AppState{
		Title:      "Sketchpad",
		Width:      720,
		Height:     960,
		Palette:    DefaultPalette(),
		Thickness:  DefaultThicknessRange(),
		Smoothness: render.DefaultSmoothness,
		Background: color.RGBA{255, 255, 255, 255},
		Shadow:     true,
		updateCh:   make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	if len(a.Palette) == 0 {
		a.Palette = DefaultPalette()
	}
	if a.Thickness.Max < a.Thickness.Min || a.Thickness.Min <= 0 {
		a.Thickness = DefaultThicknessRange()
	}
	sessOpts := append(a.sessOpts, sketch.WithChangeListener(a.NotifyImageChanged))
	a.session = sketch.NewSession(sessOpts...)
	a.session.SetThickness(a.Thickness.Clamp(a.session.Thickness()))
	return a
}

// Session returns the drawing session shown by the window.
func (a *AppState) Session() *sketch.Session { return a.session }

// NotifyImageChanged requests a repaint of the UI when the session mutates.
func (a *AppState) NotifyImageChanged() {
	if a.updateCh == nil {
		return
	}
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if err := a.session.Close(); err != nil {
			log.Printf("close session: %v", err)
		}
		if a.onClose != nil {
			a.onClose()
		}
	})
}

func (a *AppState) viewport(width, height int) Viewport {
	cw, ch := a.session.Size()
	return Viewport{
		Canvas:  image.Pt(cw, ch),
		Area:    image.Rect(toolbarWidth, 0, width, height-bottomHeight),
		Padding: canvasPadding,
	}
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

func (a *AppState) Main(s screen.Screen) {
	width, height := a.Width, a.Height
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.Title})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	defer a.notifyClose()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-a.updateCh:
				w.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	sess := a.session
	in := &Input{Session: sess}
	presets := a.Thickness.Presets()

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	defer close(paintCh)
	fp := newFramePainter(a)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			fp.drawFrame(ctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()

	var message string
	var messageUntil time.Time
	hover := noHit
	quit := false

	flash := func(msg string) {
		message = msg
		log.Print(message)
		messageUntil = time.Now().Add(2 * time.Second)
	}

	keyboardAction := map[KeyShortcut]string{}
	actions := map[string]func(){}
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		actions[name] = fn
		if keys != nil {
			for _, sc := range keys.KeyboardShortcuts() {
				keyboardAction[sc] = name
			}
		}
	}

	for _, t := range sketch.Tools() {
		register(t.String(), shortcutList{{Rune: toolKeys[t]}}, func() { in.SelectTool(t) })
	}
	for i, pc := range a.Palette {
		var keys shortcutList
		if i < 9 {
			keys = shortcutList{{Rune: rune('1' + i)}}
		}
		register("color-"+pc.Name, keys, func() { sess.SelectColor(pc.Color) })
	}
	register("thinner", shortcutList{{Rune: '['}}, func() {
		sess.SetThickness(a.Thickness.Step(sess.Thickness(), -1))
	})
	register("thicker", shortcutList{{Rune: ']'}}, func() {
		sess.SetThickness(a.Thickness.Step(sess.Thickness(), 1))
	})
	register("clear", shortcutList{{Rune: 'c'}}, func() {
		in.Release()
		sess.Clear()
	})
	register("quit", shortcutList{{Rune: 'q'}, {Code: key.CodeEscape}}, func() { quit = true })

	handle := func(name string) {
		if fn, ok := actions[name]; ok {
			fn()
			w.Send(paint.Event{})
		}
	}

	layout := layoutToolbar(len(sketch.Tools()), len(a.Palette), len(presets))
	activate := func(h hit) {
		switch h.kind {
		case hitTool:
			handle(sketch.Tools()[h.idx].String())
		case hitSwatch:
			handle("color-" + a.Palette[h.idx].Name)
		case hitThickness:
			sess.SetThickness(presets[h.idx])
			w.Send(paint.Event{})
		case hitClear:
			handle("clear")
		case hitShortcut:
			if act := statusShortcuts[h.idx].action; act != "" {
				handle(act)
			}
		}
	}

	for !quit {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				paintMu.Lock()
				if paintCancel != nil {
					paintCancel()
				}
				paintMu.Unlock()
				return
			}
			if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff && in.Cancel() {
				w.Send(paint.Event{})
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil {
				if dropCount < frameDropThreshold {
					paintCancel()
					dropCount++
				}
			}
			paintMu.Unlock()
			st := paintState{
				width:        width,
				height:       height,
				view:         a.viewport(width, height),
				frame:        sess.Snapshot(),
				palette:      a.Palette,
				presets:      presets,
				hover:        hover,
				message:      message,
				messageUntil: messageUntil,
			}
			select {
			case paintCh <- st:
			default:
				select {
				case <-paintCh:
				default:
				}
				paintCh <- st
			}
		case mouse.Event:
			p := image.Pt(int(e.X), int(e.Y))
			view := a.viewport(width, height)
			if e.Direction == mouse.DirRelease && e.Button == mouse.ButtonLeft {
				if in.Release() {
					w.Send(paint.Event{})
					continue
				}
			}
			if in.Dragging() {
				if e.Direction == mouse.DirNone && in.Move(view, e.X, e.Y) {
					w.Send(paint.Event{})
				}
				continue
			}
			if message != "" && time.Now().Before(messageUntil) && e.Direction == mouse.DirPress {
				messageUntil = time.Time{}
				w.Send(paint.Event{})
				continue
			}
			var h hit
			switch {
			case p.Y >= height-bottomHeight:
				h = noHit
				for i, r := range layoutShortcuts(height) {
					if p.In(r) {
						h = hit{kind: hitShortcut, idx: i}
						break
					}
				}
			case p.X < toolbarWidth:
				h = layout.hitTest(p)
			default:
				if e.Direction == mouse.DirPress && e.Button == mouse.ButtonLeft {
					switch in.Press(view, e.X, e.Y) {
					case PressStroke:
						w.Send(paint.Event{})
					case PressFillDropped:
						flash("fill dropped")
						w.Send(paint.Event{})
					}
				}
				h = noHit
			}
			if h != hover {
				hover = h
				w.Send(paint.Event{})
			}
			if e.Direction == mouse.DirPress && e.Button == mouse.ButtonLeft {
				activate(h)
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			action, ok := keyboardAction[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers}]
			if !ok {
				action, ok = keyboardAction[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]
			}
			if ok {
				handle(action)
			}
		}
	}
	paintMu.Lock()
	if paintCancel != nil {
		paintCancel()
	}
	paintMu.Unlock()
}
