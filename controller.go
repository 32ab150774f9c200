package paint

import (
	"fmt"
	"image"
	"log/slog"
)

// Controller is a drawing session: a persistent surface holding committed
// artwork, an overlay surface for live previews, and the tool state that
// interprets pointer and key events.
//
// Every event handler runs to completion and leaves the session consistent.
// Failures inside a handler are best-effort: the handler returns the error,
// the event has no visible effect and the mode does not advance. Callers
// that want fail-soft behaviour ignore or log the returned error.
//
// A Controller is not safe for concurrent use; deliver one event at a time.
type Controller struct {
	persistent Surface
	overlay    Surface
	width      int
	height     int

	mode  Mode
	color Color
	// fill is the persistent fill style; crop cuts with it. Text draws with
	// an explicit colour and leaves it untouched.
	fill Color

	fontSize   int
	fontFamily string

	anchor  anchor
	pressed bool
}

// anchor is the drag start of StraightLine, Circle and Crop.
type anchor struct {
	x, y float64
	ok   bool
}

// NewController creates a width×height session in DefaultMode. The
// persistent surface is filled with the background colour and the overlay
// starts transparent. Both surfaces get round caps, the configured line
// width and the current colour.
func NewController(width, height int, opts ...Option) (*Controller, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	persistent, overlay := o.persistent, o.overlay
	if persistent == nil || overlay == nil {
		fonts := o.fonts
		if fonts == nil {
			fonts = NewFontBook()
		}
		var err error
		if persistent, err = NewLayer(width, height, fonts); err != nil {
			return nil, err
		}
		if overlay, err = NewLayer(width, height, fonts); err != nil {
			return nil, err
		}
	}
	want := image.Rect(0, 0, width, height)
	if persistent.Bounds() != want || overlay.Bounds() != want {
		return nil, fmt.Errorf("%w: surfaces %v and %v, want %v",
			ErrInvalidSize, persistent.Bounds(), overlay.Bounds(), want)
	}

	c := &Controller{
		persistent: persistent,
		overlay:    overlay,
		width:      width,
		height:     height,
		mode:       DefaultMode{},
		color:      o.strokeColor,
		fill:       o.background,
		fontSize:   o.fontSize,
		fontFamily: o.fontFamily,
	}
	persistent.FillRect(want, o.background.Value())
	overlay.Clear()
	for _, s := range c.surfaces() {
		s.SetLineWidth(o.strokeWidth)
		s.SetStrokeColor(o.strokeColor)
		s.SetDash()
		s.BeginPath()
	}

	Logger().Debug("paint: session created",
		slog.Int("width", width), slog.Int("height", height),
		slog.String("background", o.background.String()))
	return c, nil
}

func (c *Controller) surfaces() [2]Surface {
	return [2]Surface{c.persistent, c.overlay}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// Tool returns the tool of the current mode.
func (c *Controller) Tool() Tool { return ModeTool(c.mode) }

// Color returns the current colour.
func (c *Controller) Color() Color { return c.color }

// Pressed reports whether a drag is in progress.
func (c *Controller) Pressed() bool { return c.pressed }

// Anchor returns the drag start point, if one is recorded.
func (c *Controller) Anchor() (x, y float64, ok bool) {
	return c.anchor.x, c.anchor.y, c.anchor.ok
}

// Persistent returns the surface holding committed artwork.
func (c *Controller) Persistent() Surface { return c.persistent }

// Overlay returns the preview surface.
func (c *Controller) Overlay() Surface { return c.overlay }

// Size returns the session dimensions.
func (c *Controller) Size() (width, height int) { return c.width, c.height }

// Press handles a pointer press at (x, y).
func (c *Controller) Press(x, y float64) error {
	switch m := c.mode.(type) {
	case DefaultMode:
		c.persistent.BeginPath()
		c.persistent.MoveTo(x, y)
		c.pressed = true
	case StraightLineMode:
		c.anchor = anchor{x: x, y: y, ok: true}
		c.overlay.BeginPath()
		c.overlay.MoveTo(x, y)
		c.pressed = true
	case CircleMode:
		c.anchor = anchor{x: x, y: y, ok: true}
		c.overlay.BeginPath()
		c.pressed = true
	case FillMode:
		px, py := pixel(x, y)
		if err := FloodFill(c.persistent, px, py, c.color.Value()); err != nil {
			return c.failed("fill", err)
		}
	case CropMode:
		c.pressCrop(x, y)
	case CropPlaceMode:
		c.overlay.BeginPath()
		c.pressed = true
		return c.failed("stamp", c.stamp(c.overlay, m.Snapshot, x, y))
	case TextMode:
	}
	return nil
}

// Move handles pointer motion. It does nothing unless a drag is in progress.
func (c *Controller) Move(x, y float64) error {
	if !c.pressed {
		return nil
	}
	switch m := c.mode.(type) {
	case DefaultMode:
		c.persistent.LineTo(x, y)
		err := c.persistent.Stroke()
		c.persistent.BeginPath()
		c.persistent.MoveTo(x, y)
		return c.failed("stroke", err)
	case StraightLineMode:
		c.overlay.Clear()
		c.overlay.BeginPath()
		c.overlay.MoveTo(c.anchor.x, c.anchor.y)
		c.overlay.LineTo(x, y)
		return c.failed("line preview", c.overlay.Stroke())
	case CircleMode:
		c.overlay.Clear()
		c.overlay.BeginPath()
		c.overlay.Arc(x, y, dist(c.anchor.x, c.anchor.y, x, y))
		return c.failed("circle preview", c.overlay.Stroke())
	case CropMode:
		return c.moveCrop(x, y)
	case CropPlaceMode:
		c.overlay.Clear()
		return c.failed("stamp", c.stamp(c.overlay, m.Snapshot, x, y))
	}
	return nil
}

// Release handles a pointer release at (x, y). Drag tools ignore a release
// that has no matching press in the current tool; this includes the default
// freehand tool, so a release alone draws nothing.
func (c *Controller) Release(x, y float64) error {
	wasPressed := c.pressed
	c.pressed = false

	switch m := c.mode.(type) {
	case TextMode:
		m.Run.X, m.Run.Y = x, y
		c.mode = m
		return nil
	case FillMode:
		return nil
	}
	if !wasPressed {
		return nil
	}

	switch m := c.mode.(type) {
	case DefaultMode:
		c.persistent.LineTo(x, y)
		return c.failed("stroke", c.persistent.Stroke())
	case StraightLineMode:
		c.persistent.BeginPath()
		c.persistent.MoveTo(c.anchor.x, c.anchor.y)
		c.persistent.LineTo(x, y)
		err := c.persistent.Stroke()
		c.overlay.Clear()
		return c.failed("line", err)
	case CircleMode:
		c.persistent.BeginPath()
		c.persistent.Arc(x, y, dist(c.anchor.x, c.anchor.y, x, y))
		err := c.persistent.Stroke()
		c.overlay.Clear()
		return c.failed("circle", err)
	case CropMode:
		return c.releaseCrop(x, y)
	case CropPlaceMode:
		return c.releaseCropPlace(m, x, y)
	}
	return nil
}

// SelectDefault switches to freehand drawing.
func (c *Controller) SelectDefault() { c.selectMode(DefaultMode{}) }

// SelectStraightLine switches to the straight line tool.
func (c *Controller) SelectStraightLine() { c.selectMode(StraightLineMode{}) }

// SelectCircle switches to the circle tool.
func (c *Controller) SelectCircle() { c.selectMode(CircleMode{}) }

// SelectFill switches to flood fill.
func (c *Controller) SelectFill() { c.selectMode(FillMode{}) }

// SelectCrop switches to rectangle selection. A held snapshot is dropped.
func (c *Controller) SelectCrop() { c.selectMode(CropMode{}) }

// SelectTool selects t by name. ToolCropPlace cannot be selected directly
// and returns ErrUnknownTool.
func (c *Controller) SelectTool(t Tool) error {
	switch t {
	case ToolDefault:
		c.SelectDefault()
	case ToolStraightLine:
		c.SelectStraightLine()
	case ToolCircle:
		c.SelectCircle()
	case ToolFill:
		c.SelectFill()
	case ToolCrop:
		c.SelectCrop()
	case ToolText:
		return c.SelectText()
	default:
		return fmt.Errorf("%w: %v cannot be selected", ErrUnknownTool, t)
	}
	return nil
}

// selectMode replaces the mode wholesale and abandons any drag in progress:
// the anchor, pressed flag, uncommitted text and held snapshot are dropped
// and the overlay is cleared with its style reset from the persistent
// surface.
func (c *Controller) selectMode(m Mode) {
	from := ModeTool(c.mode)
	c.mode = m
	c.anchor = anchor{}
	c.pressed = false

	c.overlay.Clear()
	c.overlay.BeginPath()
	c.overlay.SetDash()
	c.overlay.SetLineWidth(c.persistent.LineWidth())
	c.overlay.SetStrokeColor(c.persistent.StrokeColor())

	Logger().Debug("paint: tool selected",
		slog.String("from", from.String()), slog.String("to", ModeTool(m).String()))
}

// SetStrokeWidth sets the line width of both surfaces.
func (c *Controller) SetStrokeWidth(w float64) error {
	if !(w > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, w)
	}
	for _, s := range c.surfaces() {
		s.SetLineWidth(w)
	}
	return nil
}

// SetStrokeColor makes col the current colour and the stroke colour of
// both surfaces.
func (c *Controller) SetStrokeColor(col Color) {
	c.color = col
	for _, s := range c.surfaces() {
		s.SetStrokeColor(col)
	}
}

// SetStrokeColorString parses s with [ParseColor] and applies the result.
// An unparsable string selects Black and returns the parse error.
func (c *Controller) SetStrokeColorString(s string) error {
	col, err := ParseColor(s)
	c.SetStrokeColor(col)
	return err
}

// failed logs a best-effort failure and returns it.
func (c *Controller) failed(op string, err error) error {
	if err == nil {
		return nil
	}
	Logger().Debug("paint: event failed",
		slog.String("op", op), slog.String("tool", c.Tool().String()), slog.Any("err", err))
	return err
}
