package paint

import (
	"log/slog"
	"regexp"
	"unicode/utf8"
)

// Key names handled by the text tool.
const (
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
)

// textInput is the set of keys the text tool appends.
var textInput = regexp.MustCompile(`^[A-Za-z0-9 ]$`)

// AcceptsKey reports whether the text tool appends key to its content:
// a single ASCII letter, digit or space.
func AcceptsKey(key string) bool {
	return textInput.MatchString(key)
}

// SelectText switches to the text tool with empty content at (0,0) and sets
// the configured font on both surfaces. The mode changes even when the font
// cannot be set; the error is returned.
func (c *Controller) SelectText() error {
	f := Font{Size: c.fontSize, Family: c.fontFamily}
	c.selectMode(TextMode{Run: TextRun{Font: f}})
	for _, s := range c.surfaces() {
		if err := s.SetFont(f); err != nil {
			return c.failed("font", err)
		}
	}
	return nil
}

// KeyDown handles a key press named as in DOM KeyboardEvent.key. Only the
// text tool reacts: Enter commits the run in the current colour, Backspace
// drops the last character and any accepted key is appended. Every other
// key is ignored.
func (c *Controller) KeyDown(key string) error {
	m, ok := c.mode.(TextMode)
	if !ok {
		return nil
	}
	run := m.Run

	switch key {
	case KeyEnter:
		c.overlay.Clear()
		if err := c.persistent.FillText(run.Content, run.X, run.Y, c.color); err != nil {
			return c.failed("text", err)
		}
		Logger().Debug("paint: text committed", slog.String("font", run.Font.String()),
			slog.Float64("x", run.X), slog.Float64("y", run.Y))
		run.Content = ""
		c.mode = TextMode{Run: run}
		return nil
	case KeyBackspace:
		if _, size := utf8.DecodeLastRuneInString(run.Content); size > 0 {
			run.Content = run.Content[:len(run.Content)-size]
		}
	default:
		if !AcceptsKey(key) {
			return nil
		}
		run.Content += key
	}
	c.mode = TextMode{Run: run}
	return c.redrawText(run)
}

// redrawText repaints the uncommitted run on the overlay.
func (c *Controller) redrawText(run TextRun) error {
	c.overlay.Clear()
	return c.failed("text preview", c.overlay.FillText(run.Content, run.X, run.Y, c.color))
}
