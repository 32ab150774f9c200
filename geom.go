package paint

import (
	"image"
	"math"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func abs[T number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// dist is the euclidean distance between (x0,y0) and (x1,y1).
func dist[T constraints.Float](x0, y0, x1, y1 T) T {
	return T(math.Hypot(float64(x1-x0), float64(y1-y0)))
}

// normRect returns the corner and size of the rectangle spanned by two
// points, valid regardless of drag direction.
func normRect[T number](x0, y0, x1, y1 T) (x, y, w, h T) {
	return min(x0, x1), min(y0, y1), abs(x0 - x1), abs(y0 - y1)
}

// pixelRect converts a normalised rectangle to whole pixels. The corner is
// floored and the size truncated, matching canvas getImageData on
// fractional coordinates closely enough for pointer input.
func pixelRect(x, y, w, h float64) image.Rectangle {
	px, py := int(math.Floor(x)), int(math.Floor(y))
	return image.Rect(px, py, px+int(w), py+int(h))
}

// pixel floors a pointer coordinate to the pixel containing it.
func pixel(x, y float64) (int, int) {
	return int(math.Floor(x)), int(math.Floor(y))
}
