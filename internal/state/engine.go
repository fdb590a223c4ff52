package state

import (
	"image/color"
	"log"

	"InkBoard/internal/geom"
)

// Engine owns the stroke collection for an editing session and
// applies pointer events to it according to the active tool. It runs
// synchronously inside the host's event callbacks; every mutation
// builds a fresh slice, so a snapshot handed to the renderer is never
// changed behind its back.
//
// Coordinates are assumed finite and the eraser radius non-negative;
// that contract is the host layer's to uphold.
type Engine struct {
	strokes []Stroke
	drawing bool

	tool        Tool
	penColor    color.Color
	penWidth    float32
	eraserSize  float32
	minDistance float64
}

func NewEngine() *Engine {
	return &Engine{
		tool:        ToolPen,
		penColor:    color.Black,
		penWidth:    2,
		eraserSize:  20,
		minDistance: DefaultMinDistance,
	}
}

func (e *Engine) SetTool(t Tool)            { e.tool = t }
func (e *Engine) Tool() Tool                { return e.tool }
func (e *Engine) SetColor(c color.Color)    { e.penColor = c }
func (e *Engine) SetWidth(w float32)        { e.penWidth = w }
func (e *Engine) SetEraserRadius(r float32) { e.eraserSize = r }
func (e *Engine) EraserRadius() float32     { return e.eraserSize }

// Strokes returns a snapshot of the collection in paint order, first
// drawn at the bottom.
func (e *Engine) Strokes() []Stroke {
	out := make([]Stroke, len(e.strokes))
	copy(out, e.strokes)
	return out
}

func (e *Engine) Len() int { return len(e.strokes) }

// Clear drops every stroke.
func (e *Engine) Clear() {
	e.strokes = nil
	e.drawing = false
	log.Printf("[engine] board cleared")
}

// Pointer feeds one host pointer event through the tool dispatch.
// Pen events drive the Idle/Drawing state machine; eraser events are
// re-entrant and act on every begin and continue sample, so holding
// the button erases continuously along the drag.
func (e *Engine) Pointer(ev PointerEvent) {
	switch e.tool {
	case ToolPen:
		e.pen(ev)
	case ToolEraserStroke:
		if ev.Kind == EventBegin || ev.Kind == EventContinue {
			e.eraseStroke(ev.Pos)
		}
	case ToolEraserPartial:
		if ev.Kind == EventBegin || ev.Kind == EventContinue {
			e.erasePartial(ev.Pos)
		}
	}
}

func (e *Engine) pen(ev PointerEvent) {
	switch ev.Kind {
	case EventBegin:
		s := Stroke{
			ID:     newStrokeID(),
			Points: []geom.Point{ev.Pos},
			Color:  e.penColor,
			Width:  e.penWidth,
		}
		e.strokes = append(e.Strokes(), s)
		e.drawing = true
	case EventContinue:
		if !e.drawing || len(e.strokes) == 0 {
			return
		}
		cur := e.strokes[len(e.strokes)-1]
		last := cur.Points[len(cur.Points)-1]
		if !ShouldAppend(last, ev.Pos, e.minDistance) {
			return
		}
		pts := make([]geom.Point, len(cur.Points), len(cur.Points)+1)
		copy(pts, cur.Points)
		cur.Points = append(pts, ev.Pos)
		next := e.Strokes()
		next[len(next)-1] = cur
		e.strokes = next
	case EventEnd:
		// A click with no accepted continue leaves a 1-point stroke;
		// it cannot be rendered or hit, so it must not outlive the
		// gesture.
		if e.drawing && len(e.strokes) > 0 {
			if last := e.strokes[len(e.strokes)-1]; len(last.Points) < 2 {
				e.strokes = e.Strokes()[:len(e.strokes)-1]
			}
		}
		e.drawing = false
	}
}

// eraseStroke removes the topmost stroke under p, if any.
func (e *Engine) eraseStroke(p geom.Point) {
	id := FindStrokeAt(p, e.strokes, e.eraserSize)
	if id == "" {
		return
	}
	next := make([]Stroke, 0, len(e.strokes)-1)
	for _, s := range e.strokes {
		if s.ID != id {
			next = append(next, s)
		}
	}
	e.strokes = next
}

// erasePartial cuts every stroke against the eraser circle at p.
// Fragments replace their source in place, so relative order is
// preserved; repeated application only ever fragments further, never
// merges.
func (e *Engine) erasePartial(p geom.Point) {
	e.strokes = splitAll(e.strokes, p, e.eraserSize)
}
