package paint

import "fmt"

// FloodFill replaces the 4-connected region of pixels matching the colour
// at (x, y) with c. Diagonal neighbours are not connected.
//
// The whole buffer is read once, filled in memory with an explicit stack of
// byte offsets and written back with a single WriteRect. Filling a region
// that already has colour c changes nothing. A seed outside the buffer
// returns ErrOutOfBounds.
//
// Left and right neighbours are never taken across a row edge and no offset
// before the buffer start is pushed, so a region touching the first or last
// column does not bleed into the adjacent row.
func FloodFill(buf PixelBuffer, x, y int, c RGBA) error {
	b := buf.Bounds()
	snap, err := buf.ReadRect(b)
	if err != nil {
		return fmt.Errorf("paint: flood fill: %w", err)
	}
	if x < 0 || x >= snap.width || y < 0 || y >= snap.height {
		return &RectError{Op: "flood fill", Rect: b, Err: ErrOutOfBounds}
	}

	target := snap.At(x, y)
	if target == c {
		return nil
	}

	pix := snap.pix
	stride := snap.width * 4
	last := len(pix) - 4

	stack := []int{y*stride + x*4}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if i > last {
			continue
		}
		if pix[i] != target.R || pix[i+1] != target.G || pix[i+2] != target.B || pix[i+3] != target.A {
			continue
		}
		pix[i+0], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A

		col := i % stride
		if col+4 < stride {
			stack = append(stack, i+4)
		}
		if col > 0 {
			stack = append(stack, i-4)
		}
		stack = append(stack, i+stride)
		if i >= stride {
			stack = append(stack, i-stride)
		}
	}

	return buf.WriteRect(b.Min.X, b.Min.Y, snap)
}
