package paint

import (
	"bytes"
	"fmt"
	"image"
)

// PixelBuffer is rectangular read/write access to a row-major RGBA raster
// with a top-left origin.
type PixelBuffer interface {
	// Bounds returns the buffer rectangle, always anchored at (0,0).
	Bounds() image.Rectangle

	// ReadRect copies the pixels of r. It fails with ErrEmptyRect for a
	// rectangle covering no pixels and with ErrOutOfBounds when r is not
	// fully inside the buffer.
	ReadRect(r image.Rectangle) (*Snapshot, error)

	// WriteRect replaces the pixels under s placed with its top-left corner
	// at (x, y). Pixels falling outside the buffer are dropped.
	WriteRect(x, y int, s *Snapshot) error
}

// Snapshot is an immutable rectangle of RGBA pixels.
type Snapshot struct {
	width  int
	height int
	pix    []uint8 // width*height*4, row-major
}

// NewSnapshot returns a snapshot holding a copy of pix.
func NewSnapshot(width, height int, pix []uint8) (*Snapshot, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyRect
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes", ErrSnapshotSize, width, height, len(pix))
	}
	return &Snapshot{width: width, height: height, pix: bytes.Clone(pix)}, nil
}

// SolidSnapshot returns a width×height snapshot filled with c.
func SolidSnapshot(width, height int, c RGBA) (*Snapshot, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyRect
	}
	pix := make([]uint8, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
	return &Snapshot{width: width, height: height, pix: pix}, nil
}

// Width returns the snapshot width in pixels.
func (s *Snapshot) Width() int { return s.width }

// Height returns the snapshot height in pixels.
func (s *Snapshot) Height() int { return s.height }

// Bounds returns the snapshot rectangle anchored at (0,0).
func (s *Snapshot) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At returns the pixel at (x, y), or Transparent outside the snapshot.
func (s *Snapshot) At(x, y int) RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return RGBA{s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3]}
}

// Pix returns a copy of the raw pixel bytes.
func (s *Snapshot) Pix() []uint8 {
	return bytes.Clone(s.pix)
}

// Equal reports whether two snapshots have the same size and pixels.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.width == o.width && s.height == o.height && bytes.Equal(s.pix, o.pix)
}

func (s *Snapshot) valid() error {
	if s == nil {
		return ErrNilSnapshot
	}
	if s.width <= 0 || s.height <= 0 || len(s.pix) != s.width*s.height*4 {
		return ErrSnapshotSize
	}
	return nil
}

// checkRead validates a read rectangle against buffer bounds.
func checkRead(op string, bounds, r image.Rectangle) error {
	if r.Empty() {
		return &RectError{Op: op, Rect: r, Err: ErrEmptyRect}
	}
	if !r.In(bounds) {
		return &RectError{Op: op, Rect: r, Err: ErrOutOfBounds}
	}
	return nil
}
