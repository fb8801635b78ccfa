package sketch

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/example/sketchpad/internal/floodfill"
)

// Session is the drawing state machine.
//
// Interaction methods (SelectTool through Clear, RequestFill and
// InitBitmap) must be called from a single goroutine. Bucket fills run on a
// worker goroutine owned by the session and publish a new bitmap atomically;
// Bitmap and Snapshot never observe a partially filled image.
type Session struct {
	tool      Tool
	color     color.RGBA
	thickness float64
	current   *Stroke
	committed []Stroke

	width, height int
	bitmap        atomic.Pointer[image.RGBA]

	onChange func()
	newID    func() string
	fill     func(*image.RGBA, image.Point, color.RGBA) int

	fills      chan fillRequest
	quit       chan struct{}
	workerDone chan struct{}
	closed     atomic.Bool
	closeOnce  sync.Once

	pendingMu sync.Mutex
	pending   int
	idle      chan struct{}
}

// Option configures a Session.
type Option func(*Session)

// WithCanvasSize sets the logical canvas size. A non-positive dimension
// starts the session without a bitmap until InitBitmap is applied.
func WithCanvasSize(w, h int) Option {
	return func(s *Session) {
		s.width = w
		s.height = h
	}
}

// WithColor sets the initial drawing colour.
func WithColor(c color.RGBA) Option {
	return func(s *Session) { s.color = c }
}

// WithThickness sets the initial stroke thickness. Non-positive values are
// ignored.
func WithThickness(w float64) Option {
	return func(s *Session) {
		if validThickness(w) {
			s.thickness = w
		}
	}
}

// WithTool sets the initially selected tool.
func WithTool(t Tool) Option {
	return func(s *Session) { s.tool = t }
}

// WithChangeListener registers fn to run whenever a new bitmap is
// published. fn is called from the fill worker goroutine and must not block.
func WithChangeListener(fn func()) Option {
	return func(s *Session) { s.onChange = fn }
}

// NewSession creates a session with an opaque white bitmap of the canvas
// size and starts its fill worker. Call Close to stop the worker.
func NewSession(opts ...Option) *Session {
	s := &Session{
		tool:       ToolBrush,
		color:      DefaultColor,
		thickness:  DefaultThickness,
		width:      DefaultWidth,
		height:     DefaultHeight,
		newID:      uuid.NewString,
		fill:       floodfill.Fill,
		fills:      make(chan fillRequest, 1),
		quit:       make(chan struct{}),
		workerDone: make(chan struct{}),
		idle:       closedChan(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.width > 0 && s.height > 0 {
		s.bitmap.Store(blankBitmap(s.width, s.height))
	}
	go s.worker()
	return s
}

func validThickness(w float64) bool {
	return w > 0
}

func blankBitmap(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

// Tool returns the selected tool.
func (s *Session) Tool() Tool { return s.tool }

// Color returns the selected colour.
func (s *Session) Color() color.RGBA { return s.color }

// Thickness returns the thickness new strokes are created with.
func (s *Session) Thickness() float64 { return s.thickness }

// Size returns the logical canvas size.
func (s *Session) Size() (int, int) { return s.width, s.height }

// Bitmap returns the latest published fill bitmap, or nil.
func (s *Session) Bitmap() *image.RGBA { return s.bitmap.Load() }

// SelectTool switches tools. Any stroke in progress is discarded.
func (s *Session) SelectTool(t Tool) {
	s.tool = t
	s.current = nil
}

// SelectColor changes the colour for new strokes and fills. A stroke in
// progress keeps the colour it was started with.
func (s *Session) SelectColor(c color.RGBA) {
	s.color = c
}

// SetThickness changes the thickness for strokes started afterwards.
func (s *Session) SetThickness(w float64) {
	if !validThickness(w) {
		return
	}
	s.thickness = w
}

// BeginStroke starts a new stroke when the brush or eraser is selected. A
// stroke already in progress is replaced without being committed.
func (s *Session) BeginStroke() {
	if !s.tool.Draws() {
		return
	}
	s.current = &Stroke{
		ID:        s.newID(),
		Color:     s.color,
		Eraser:    s.tool == ToolEraser,
		Thickness: s.thickness,
	}
}

// ExtendStroke appends p to the stroke in progress.
func (s *Session) ExtendStroke(p Point) {
	if !s.tool.Draws() || s.current == nil {
		return
	}
	s.current.Points = append(s.current.Points, p)
}

// EndStroke commits the stroke in progress.
func (s *Session) EndStroke() {
	if s.current == nil {
		return
	}
	s.committed = append(s.committed, *s.current)
	s.current = nil
}

// Clear drops the stroke in progress and the whole committed history. The
// fill bitmap is left alone.
func (s *Session) Clear() {
	s.current = nil
	s.committed = nil
}

// Drawing reports whether a stroke is in progress.
func (s *Session) Drawing() bool { return s.current != nil }

// StrokeCount returns the number of committed strokes.
func (s *Session) StrokeCount() int { return len(s.committed) }

// InitBitmap replaces the fill bitmap with an opaque white w×h image. Fills
// that started against the previous bitmap are discarded when they finish.
func (s *Session) InitBitmap(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.width, s.height = w, h
	s.bitmap.Store(blankBitmap(w, h))
	s.changed()
}

// Snapshot copies the session state for rendering.
func (s *Session) Snapshot() Frame {
	f := Frame{
		Tool:      s.tool,
		Color:     s.color,
		Thickness: s.thickness,
		Committed: s.committed[:len(s.committed):len(s.committed)],
		Bitmap:    s.bitmap.Load(),
		Width:     s.width,
		Height:    s.height,
	}
	if s.current != nil {
		c := s.current.clone()
		f.Current = &c
	}
	return f
}

func (s *Session) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
