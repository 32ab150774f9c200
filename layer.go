package paint

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
)

// Layer is a [Surface] rendered by gg. It owns a gg.Pixmap and a gg.Context
// drawing into it; pixel access goes through an image.RGBA view sharing the
// pixmap bytes, so drawing and ReadRect/WriteRect see the same memory.
//
// A Layer is not safe for concurrent use.
type Layer struct {
	pm   *gg.Pixmap
	dc   *gg.Context
	view *image.RGBA

	fonts *FontBook
	face  text.Face
	font  Font

	width  float64
	stroke Color
	dash   []float64
}

// NewLayer creates a transparent width×height layer with line width 1,
// black stroke and round line caps. Faces are resolved through fonts; a nil
// fonts uses a fresh [NewFontBook].
func NewLayer(width, height int, fonts *FontBook) (*Layer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if fonts == nil {
		fonts = NewFontBook()
	}
	pm := gg.NewPixmap(width, height)
	l := &Layer{
		pm: pm,
		dc: gg.NewContext(width, height, gg.WithPixmap(pm)),
		view: &image.RGBA{
			Pix:    pm.Data(),
			Stride: width * 4,
			Rect:   image.Rect(0, 0, width, height),
		},
		fonts:  fonts,
		width:  1,
		stroke: Black,
	}
	l.applyStroke()
	return l, nil
}

// Width returns the layer width in pixels.
func (l *Layer) Width() int { return l.view.Rect.Dx() }

// Height returns the layer height in pixels.
func (l *Layer) Height() int { return l.view.Rect.Dy() }

// Bounds implements [PixelBuffer].
func (l *Layer) Bounds() image.Rectangle { return l.view.Rect }

// ReadRect implements [PixelBuffer].
func (l *Layer) ReadRect(r image.Rectangle) (*Snapshot, error) {
	if err := checkRead("read", l.view.Rect, r); err != nil {
		return nil, err
	}
	w, h := r.Dx(), r.Dy()
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		off := l.view.PixOffset(r.Min.X, r.Min.Y+y)
		copy(pix[y*w*4:(y+1)*w*4], l.view.Pix[off:off+w*4])
	}
	return &Snapshot{width: w, height: h, pix: pix}, nil
}

// WriteRect implements [PixelBuffer]. The snapshot replaces the pixels it
// covers, alpha included.
func (l *Layer) WriteRect(x, y int, s *Snapshot) error {
	if err := s.valid(); err != nil {
		return err
	}
	src := &image.RGBA{Pix: s.pix, Stride: s.width * 4, Rect: s.Bounds()}
	dst := s.Bounds().Add(image.Pt(x, y))
	draw.Draw(l.view, dst, src, image.Point{}, draw.Src)
	return nil
}

// Clear implements [Surface].
func (l *Layer) Clear() {
	clear(l.view.Pix)
}

// FillRect implements [Surface].
func (l *Layer) FillRect(r image.Rectangle, c RGBA) {
	u := &image.Uniform{C: color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}}
	draw.Draw(l.view, r.Canon(), u, image.Point{}, draw.Src)
}

// BeginPath implements [Surface].
func (l *Layer) BeginPath() { l.dc.ClearPath() }

// MoveTo implements [Surface].
func (l *Layer) MoveTo(x, y float64) { l.dc.MoveTo(x, y) }

// LineTo implements [Surface].
func (l *Layer) LineTo(x, y float64) { l.dc.LineTo(x, y) }

// Rect implements [Surface].
func (l *Layer) Rect(x, y, w, h float64) { l.dc.DrawRectangle(x, y, w, h) }

// Arc implements [Surface].
func (l *Layer) Arc(x, y, r float64) { l.dc.DrawCircle(x, y, r) }

// Stroke implements [Surface].
func (l *Layer) Stroke() error {
	l.applyStroke()
	if err := l.dc.StrokePreserve(); err != nil {
		return fmt.Errorf("paint: stroke: %w", err)
	}
	return nil
}

// applyStroke pushes the whole stroke state into the context. FillText
// changes the context colour, so this runs before every stroke.
func (l *Layer) applyStroke() {
	st := gg.DefaultStroke().WithWidth(l.width).WithCap(gg.LineCapRound).WithJoin(gg.LineJoinRound)
	if len(l.dash) > 0 {
		st = st.WithDashPattern(l.dash...)
	}
	l.dc.SetLineWidth(l.width)
	l.dc.SetLineCap(gg.LineCapRound)
	l.dc.SetStroke(st)
	l.dc.SetColor(l.stroke.NRGBA())
}

// SetLineWidth implements [Surface]. Non-positive widths are ignored.
func (l *Layer) SetLineWidth(w float64) {
	if w > 0 {
		l.width = w
	}
}

// LineWidth implements [Surface].
func (l *Layer) LineWidth() float64 { return l.width }

// SetStrokeColor implements [Surface].
func (l *Layer) SetStrokeColor(c Color) { l.stroke = c }

// StrokeColor implements [Surface].
func (l *Layer) StrokeColor() Color { return l.stroke }

// SetDash implements [Surface].
func (l *Layer) SetDash(lengths ...float64) {
	if len(lengths) == 0 {
		l.dash = nil
		return
	}
	l.dash = slices.Clone(lengths)
}

// Dash implements [Surface].
func (l *Layer) Dash() []float64 { return slices.Clone(l.dash) }

// SetFont implements [Surface]. On failure the previous font stays active.
func (l *Layer) SetFont(f Font) error {
	face, err := l.fonts.Face(f)
	if err != nil {
		return err
	}
	l.face = face
	l.font = f
	l.dc.SetFont(face)
	return nil
}

// Font returns the font last set with SetFont, or the zero Font.
func (l *Layer) Font() Font { return l.font }

// FillText implements [Surface].
func (l *Layer) FillText(s string, x, y float64, c Color) error {
	if l.face == nil {
		if err := l.SetFont(Font{Size: DefaultFontSize, Family: DefaultFontFamily}); err != nil {
			return err
		}
	}
	l.dc.SetColor(c.NRGBA())
	l.dc.DrawString(s, x, y)
	return nil
}

// Image returns a copy of the layer pixels.
func (l *Layer) Image() *image.RGBA {
	return l.pm.ToImage()
}

// EncodePNG writes the layer as PNG.
func (l *Layer) EncodePNG(w io.Writer) error {
	return l.dc.EncodePNG(w)
}
