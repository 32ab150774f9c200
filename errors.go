package paint

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// Sentinel errors for the paint package.
var (
	// ErrInvalidSize is returned when a session or surface is created with a
	// non-positive dimension, or when the two surfaces disagree in size.
	ErrInvalidSize = errors.New("paint: invalid surface size")

	// ErrEmptyRect is returned when a pixel read covers zero pixels.
	ErrEmptyRect = errors.New("paint: empty rectangle")

	// ErrOutOfBounds is returned when a pixel access falls outside the buffer.
	ErrOutOfBounds = errors.New("paint: rectangle out of bounds")

	// ErrNilSnapshot is returned when a nil snapshot is written.
	ErrNilSnapshot = errors.New("paint: nil snapshot")

	// ErrSnapshotSize is returned when snapshot pixels do not match its dimensions.
	ErrSnapshotSize = errors.New("paint: snapshot size mismatch")

	// ErrUnknownColor is returned when a colour string cannot be parsed.
	ErrUnknownColor = errors.New("paint: unknown color")

	// ErrUnknownTool is returned when a tool name cannot be parsed.
	ErrUnknownTool = errors.New("paint: unknown tool")

	// ErrUnknownFont is returned when a font family is not registered.
	ErrUnknownFont = errors.New("paint: unknown font family")

	// ErrInvalidFont is returned when registered font data cannot be parsed.
	ErrInvalidFont = errors.New("paint: invalid font data")

	// ErrInvalidWidth is returned for a non-positive stroke width.
	ErrInvalidWidth = errors.New("paint: invalid stroke width")
)

// RectError records a failed rectangular pixel access.
type RectError struct {
	Op   string
	Rect image.Rectangle
	Err  error
}

func (e *RectError) Error() string {
	return fmt.Sprintf("paint: %s %v: %s", e.Op, e.Rect, strings.TrimPrefix(e.Err.Error(), "paint: "))
}

func (e *RectError) Unwrap() error { return e.Err }
