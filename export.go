package paint

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"

	"golang.org/x/image/draw"
)

// Import draws img onto the persistent surface with its top-left corner at
// the origin, composited over the existing pixels. Parts outside the
// session are dropped.
func (c *Controller) Import(img image.Image) error {
	snap, err := c.persistent.ReadRect(c.persistent.Bounds())
	if err != nil {
		return fmt.Errorf("paint: import: %w", err)
	}
	dst := snapshotImage(snap)
	b := img.Bounds()
	draw.Draw(dst, image.Rect(0, 0, b.Dx(), b.Dy()), img, b.Min, draw.Over)
	if err := c.persistent.WriteRect(0, 0, snap); err != nil {
		return fmt.Errorf("paint: import: %w", err)
	}
	Logger().Info("paint: image imported", slog.Int("width", b.Dx()), slog.Int("height", b.Dy()))
	return nil
}

// Image returns a copy of the committed artwork.
func (c *Controller) Image() (*image.RGBA, error) {
	if l, ok := c.persistent.(*Layer); ok {
		return l.Image(), nil
	}
	snap, err := c.persistent.ReadRect(c.persistent.Bounds())
	if err != nil {
		return nil, err
	}
	return snapshotImage(snap), nil
}

// OverlayImage returns a copy of the preview surface.
func (c *Controller) OverlayImage() (*image.RGBA, error) {
	if l, ok := c.overlay.(*Layer); ok {
		return l.Image(), nil
	}
	snap, err := c.overlay.ReadRect(c.overlay.Bounds())
	if err != nil {
		return nil, err
	}
	return snapshotImage(snap), nil
}

// EncodePNG writes the committed artwork as PNG.
func (c *Controller) EncodePNG(w io.Writer) error {
	if l, ok := c.persistent.(*Layer); ok {
		return l.EncodePNG(w)
	}
	img, err := c.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// snapshotImage wraps the snapshot pixels without copying. Callers own s.
func snapshotImage(s *Snapshot) *image.RGBA {
	return &image.RGBA{Pix: s.pix, Stride: s.width * 4, Rect: s.Bounds()}
}
