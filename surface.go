package paint

import "image"

// Surface is a drawable pixel buffer. It carries the canvas-style path and
// style state the controller needs on top of rectangle pixel access.
//
// Path calls accumulate into a single current path. Stroke renders it and
// leaves it in place until the next BeginPath, so a stroked path can be
// extended and stroked again.
type Surface interface {
	PixelBuffer

	// Clear sets every pixel to Transparent.
	Clear()

	// FillRect sets the pixels of r to c without blending. Pixels outside
	// the surface are dropped.
	FillRect(r image.Rectangle, c RGBA)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)

	// Rect adds a closed axis-aligned rectangle subpath.
	Rect(x, y, w, h float64)

	// Arc adds a full circle subpath centred at (x, y).
	Arc(x, y, r float64)

	// Stroke renders the current path with the current line width, stroke
	// colour and dash pattern.
	Stroke() error

	SetLineWidth(w float64)
	LineWidth() float64

	SetStrokeColor(c Color)
	StrokeColor() Color

	// SetDash sets alternating dash and gap lengths. No lengths means solid.
	SetDash(lengths ...float64)
	Dash() []float64

	// SetFont selects the face used by FillText.
	SetFont(f Font) error

	// FillText draws s with its baseline starting at (x, y).
	FillText(s string, x, y float64, c Color) error
}
