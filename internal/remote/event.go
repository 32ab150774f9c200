package remote

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/paint"
)

// Event types.
const (
	TypePress   = "press"
	TypeMove    = "move"
	TypeRelease = "release"
	TypeKey     = "key"
	TypeTool    = "tool"
	TypeColor   = "color"
	TypeWidth   = "width"
)

var (
	// ErrUnknownEvent is returned for an event type Apply does not know.
	ErrUnknownEvent = errors.New("remote: unknown event type")

	// ErrOutOfRange is returned for a pointer position or stroke width that
	// is not finite or lies outside the range Apply accepts.
	ErrOutOfRange = errors.New("remote: value out of range")
)

// Event is one canonical input event.
//
//	{"type":"press","x":10,"y":20}
//	{"type":"key","key":"Enter"}
//	{"type":"tool","tool":"circle"}
//	{"type":"color","color":"#ff0000"}
//	{"type":"width","width":8}
type Event struct {
	Type  string  `json:"type"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Key   string  `json:"key,omitempty"`
	Tool  string  `json:"tool,omitempty"`
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// Reply acknowledges one websocket event. Tool is the tool active after the
// event; Error is empty on success.
type Reply struct {
	ID    string `json:"id"`
	Seq   uint64 `json:"seq"`
	Tool  string `json:"tool"`
	Error string `json:"error,omitempty"`
}

// Apply delivers ev to c. Errors are best-effort: the controller is left
// consistent and the caller decides whether to report them.
//
// Pointer positions must lie within one session size of the surfaces, that
// is x in [-w, 2w] and y in [-h, 2h], and a width must not exceed the larger
// session dimension. Events outside these ranges fail with ErrOutOfRange and
// are not delivered.
func Apply(c *paint.Controller, ev Event) error {
	switch ev.Type {
	case TypePress, TypeMove, TypeRelease:
		if err := checkPoint(c, ev.X, ev.Y); err != nil {
			return err
		}
	}

	switch ev.Type {
	case TypePress:
		return c.Press(ev.X, ev.Y)
	case TypeMove:
		return c.Move(ev.X, ev.Y)
	case TypeRelease:
		return c.Release(ev.X, ev.Y)
	case TypeKey:
		return c.KeyDown(ev.Key)
	case TypeTool:
		t, err := paint.ParseTool(ev.Tool)
		if err != nil {
			return err
		}
		return c.SelectTool(t)
	case TypeColor:
		return c.SetStrokeColorString(ev.Color)
	case TypeWidth:
		w, h := c.Size()
		if ev.Width > float64(max(w, h)) {
			return fmt.Errorf("%w: width %g", ErrOutOfRange, ev.Width)
		}
		return c.SetStrokeWidth(ev.Width)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

// checkPoint bounds a pointer position to one session size around the
// surfaces. Preview cost grows with the coordinates.
func checkPoint(c *paint.Controller, x, y float64) error {
	w, h := c.Size()
	if !within(x, float64(w)) || !within(y, float64(h)) {
		return fmt.Errorf("%w: point (%g, %g) for %dx%d session", ErrOutOfRange, x, y, w, h)
	}
	return nil
}

func within(v, size float64) bool {
	return !math.IsNaN(v) && v >= -size && v <= 2*size
}
