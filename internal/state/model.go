package state

import (
	"image/color"

	"InkBoard/internal/geom"
)

// Stroke is a single freehand polyline. Points are in draw order; a
// live stroke always has at least 2 points once drawing has moved
// past its first sample.
type Stroke struct {
	ID     string
	Points []geom.Point
	Color  color.Color
	Width  float32
}

// Tool selects what pointer events do on the board.
type Tool int

const (
	ToolPen Tool = iota
	// ToolEraserPartial cuts strokes against the eraser circle,
	// keeping the pieces outside it.
	ToolEraserPartial
	// ToolEraserStroke deletes the topmost stroke under the cursor.
	ToolEraserStroke
)

// EventKind is the phase of a pointer gesture. The host delivers
// events strictly ordered: one Begin, any number of Continues, one
// End.
type EventKind int

const (
	EventBegin EventKind = iota
	EventContinue
	EventEnd
)

// PointerEvent is one input sample from the host layer.
type PointerEvent struct {
	Kind EventKind
	Pos  geom.Point
}
