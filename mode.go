package paint

import (
	"fmt"
	"strings"
)

// Mode is the active tool together with any in-progress tool data. The set
// of implementations is closed: DefaultMode, StraightLineMode, CircleMode,
// FillMode, CropMode, CropPlaceMode and TextMode.
type Mode interface {
	isMode()
}

// DefaultMode draws freehand strokes.
type DefaultMode struct{}

// StraightLineMode draws a single segment from press to release.
type StraightLineMode struct{}

// CircleMode draws a circle whose radius is the drag distance.
type CircleMode struct{}

// FillMode flood fills on press.
type FillMode struct{}

// CropMode selects a rectangle by dragging.
type CropMode struct{}

// CropPlaceMode holds a captured rectangle; every click stamps it.
type CropPlaceMode struct {
	Snapshot *Snapshot
}

// TextMode accumulates a text run until Enter commits it.
type TextMode struct {
	Run TextRun
}

// TextRun is uncommitted text and where it will be drawn. (X, Y) is the
// baseline origin.
type TextRun struct {
	Content string
	X, Y    float64
	Font    Font
}

func (DefaultMode) isMode()      {}
func (StraightLineMode) isMode() {}
func (CircleMode) isMode()       {}
func (FillMode) isMode()         {}
func (CropMode) isMode()         {}
func (CropPlaceMode) isMode()    {}
func (TextMode) isMode()         {}

// Tool names a drawing tool.
type Tool uint8

// Tools. ToolCropPlace is never selected directly; it reports the state
// entered after a successful crop.
const (
	ToolDefault Tool = iota
	ToolStraightLine
	ToolCircle
	ToolFill
	ToolCrop
	ToolCropPlace
	ToolText
)

var toolNames = [...]string{
	ToolDefault:      "default",
	ToolStraightLine: "straight-line",
	ToolCircle:       "circle",
	ToolFill:         "fill",
	ToolCrop:         "crop",
	ToolCropPlace:    "crop-place",
	ToolText:         "text",
}

func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", t)
}

// ParseTool parses a tool name as printed by Tool.String. "pen" and "line"
// are accepted as aliases for default and straight-line.
func ParseTool(s string) (Tool, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "pen", "freehand":
		return ToolDefault, nil
	case "line", "straightline":
		return ToolStraightLine, nil
	}
	for i, name := range toolNames {
		if key == name {
			return Tool(i), nil
		}
	}
	return ToolDefault, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}

// ModeTool returns the tool a mode belongs to.
func ModeTool(m Mode) Tool {
	switch m.(type) {
	case StraightLineMode:
		return ToolStraightLine
	case CircleMode:
		return ToolCircle
	case FillMode:
		return ToolFill
	case CropMode:
		return ToolCrop
	case CropPlaceMode:
		return ToolCropPlace
	case TextMode:
		return ToolText
	default:
		return ToolDefault
	}
}
