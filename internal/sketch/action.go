package sketch

import (
	"fmt"
	"image/color"
	"strconv"
)

// Action is one user intent applied to a session. The set of actions is
// closed; each one maps to the Session method of the same name.
type Action interface {
	fmt.Stringer
	apply(*Session)
}

type (
	SelectTool   struct{ Tool Tool }
	SelectColor  struct{ Color color.RGBA }
	SetThickness struct{ Width float64 }
	BeginStroke  struct{}
	ExtendStroke struct{ At Point }
	EndStroke    struct{}
	Clear        struct{}
	RequestFill  struct{ At Point }
	InitBitmap   struct{ Width, Height int }
)

// Apply dispatches a to the matching session operation.
func (s *Session) Apply(a Action) {
	a.apply(s)
}

func (a SelectTool) apply(s *Session)   { s.SelectTool(a.Tool) }
func (a SelectColor) apply(s *Session)  { s.SelectColor(a.Color) }
func (a SetThickness) apply(s *Session) { s.SetThickness(a.Width) }
func (BeginStroke) apply(s *Session)    { s.BeginStroke() }
func (a ExtendStroke) apply(s *Session) { s.ExtendStroke(a.At) }
func (EndStroke) apply(s *Session)      { s.EndStroke() }
func (Clear) apply(s *Session)          { s.Clear() }
func (a RequestFill) apply(s *Session)  { s.RequestFill(a.At) }
func (a InitBitmap) apply(s *Session)   { s.InitBitmap(a.Width, a.Height) }

func (a SelectTool) String() string   { return "tool " + a.Tool.String() }
func (a SelectColor) String() string  { return "color " + FormatColor(a.Color) }
func (a SetThickness) String() string { return "thickness " + formatFloat(a.Width) }
func (BeginStroke) String() string    { return "begin" }
func (a ExtendStroke) String() string { return "move " + formatPoint(a.At) }
func (EndStroke) String() string      { return "end" }
func (Clear) String() string          { return "clear" }
func (a RequestFill) String() string  { return "fill " + formatPoint(a.At) }
func (a InitBitmap) String() string   { return fmt.Sprintf("init %d %d", a.Width, a.Height) }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func formatPoint(p Point) string { return formatFloat(p.X) + " " + formatFloat(p.Y) }
