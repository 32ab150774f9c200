package paint

import "log/slog"

// Crop preview style.
const cropLineWidth = 1

var cropDash = []float64{6}

func (c *Controller) pressCrop(x, y float64) {
	c.overlay.SetLineWidth(cropLineWidth)
	c.overlay.SetStrokeColor(Black)
	c.overlay.SetDash(cropDash...)
	c.anchor = anchor{x: x, y: y, ok: true}
	c.overlay.BeginPath()
	c.pressed = true
}

func (c *Controller) moveCrop(x, y float64) error {
	c.overlay.Clear()
	c.overlay.BeginPath()
	c.overlay.Rect(normRect(c.anchor.x, c.anchor.y, x, y))
	err := c.overlay.Stroke()
	c.overlay.BeginPath()
	return c.failed("crop preview", err)
}

// releaseCrop captures the selected rectangle, shows it on the overlay and
// cuts it out of the persistent surface with the fill colour. The mode only
// becomes CropPlace when the capture succeeds.
func (c *Controller) releaseCrop(x, y float64) error {
	c.overlay.SetDash()
	c.overlay.Clear()

	r := pixelRect(normRect(c.anchor.x, c.anchor.y, x, y))
	snap, err := c.persistent.ReadRect(r)
	if err != nil {
		return c.failed("crop", err)
	}
	if err := c.overlay.WriteRect(r.Min.X, r.Min.Y, snap); err != nil {
		return c.failed("crop", err)
	}
	c.persistent.FillRect(r, c.fill.Value())
	c.mode = CropPlaceMode{Snapshot: snap}

	Logger().Debug("paint: selection captured", slog.String("rect", r.String()))
	return nil
}

// releaseCropPlace stamps the held snapshot onto the persistent surface and
// returns to Crop with the overlay style copied back from the persistent
// surface.
func (c *Controller) releaseCropPlace(m CropPlaceMode, x, y float64) error {
	err := c.stamp(c.persistent, m.Snapshot, x, y)
	c.overlay.SetLineWidth(c.persistent.LineWidth())
	c.overlay.SetStrokeColor(c.persistent.StrokeColor())
	c.mode = CropMode{}
	c.overlay.Clear()
	return c.failed("stamp", err)
}

// stamp writes s with its top-left corner at the pixel containing (x, y).
func (c *Controller) stamp(dst Surface, s *Snapshot, x, y float64) error {
	px, py := pixel(x, y)
	return dst.WriteRect(px, py, s)
}
