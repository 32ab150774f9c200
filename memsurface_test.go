package paint

import (
	"fmt"
	"image"
	"slices"
)

// memSurface is an in-memory Surface that records drawing calls as strings
// and performs pixel operations exactly.
type memSurface struct {
	w, h   int
	pix    []uint8
	ops    []string
	writes int

	width   float64
	color   Color
	dash    []float64
	font    Font
	fontErr error
}

var _ Surface = (*memSurface)(nil)

func newMemSurface(w, h int) *memSurface {
	return &memSurface{w: w, h: h, pix: make([]uint8, w*h*4), width: 1, color: Black}
}

func (m *memSurface) record(format string, args ...any) {
	m.ops = append(m.ops, fmt.Sprintf(format, args...))
}

func (m *memSurface) Bounds() image.Rectangle { return image.Rect(0, 0, m.w, m.h) }

func (m *memSurface) ReadRect(r image.Rectangle) (*Snapshot, error) {
	if err := checkRead("read", m.Bounds(), r); err != nil {
		return nil, err
	}
	w, h := r.Dx(), r.Dy()
	pix := make([]uint8, 0, w*h*4)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := (y*m.w + r.Min.X) * 4
		pix = append(pix, m.pix[i:i+w*4]...)
	}
	return NewSnapshot(w, h, pix)
}

func (m *memSurface) WriteRect(x, y int, s *Snapshot) error {
	if err := s.valid(); err != nil {
		return err
	}
	m.writes++
	for sy := 0; sy < s.height; sy++ {
		for sx := 0; sx < s.width; sx++ {
			m.set(x+sx, y+sy, s.At(sx, sy))
		}
	}
	return nil
}

func (m *memSurface) set(x, y int, c RGBA) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	i := (y*m.w + x) * 4
	m.pix[i], m.pix[i+1], m.pix[i+2], m.pix[i+3] = c.R, c.G, c.B, c.A
}

func (m *memSurface) at(x, y int) RGBA {
	i := (y*m.w + x) * 4
	return RGBA{m.pix[i], m.pix[i+1], m.pix[i+2], m.pix[i+3]}
}

func (m *memSurface) Clear() {
	clear(m.pix)
	m.record("clear")
}

func (m *memSurface) FillRect(r image.Rectangle, c RGBA) {
	r = r.Canon()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.set(x, y, c)
		}
	}
}

func (m *memSurface) BeginPath()              { m.record("begin") }
func (m *memSurface) MoveTo(x, y float64)     { m.record("move %g %g", x, y) }
func (m *memSurface) LineTo(x, y float64)     { m.record("line %g %g", x, y) }
func (m *memSurface) Rect(x, y, w, h float64) { m.record("rect %g %g %g %g", x, y, w, h) }
func (m *memSurface) Arc(x, y, r float64)     { m.record("arc %g %g %g", x, y, r) }

func (m *memSurface) Stroke() error {
	m.record("stroke")
	return nil
}

func (m *memSurface) SetLineWidth(w float64) { m.width = w }
func (m *memSurface) LineWidth() float64     { return m.width }
func (m *memSurface) SetStrokeColor(c Color) { m.color = c }
func (m *memSurface) StrokeColor() Color     { return m.color }

func (m *memSurface) SetDash(lengths ...float64) {
	m.dash = slices.Clone(lengths)
}

func (m *memSurface) Dash() []float64 { return slices.Clone(m.dash) }

func (m *memSurface) SetFont(f Font) error {
	if m.fontErr != nil {
		return m.fontErr
	}
	m.font = f
	return nil
}

func (m *memSurface) FillText(s string, x, y float64, c Color) error {
	m.record("text %q %g %g %s", s, x, y, c)
	return nil
}

// fill sets every pixel to c without recording an op.
func (m *memSurface) fill(c RGBA) {
	m.FillRect(m.Bounds(), c)
}
