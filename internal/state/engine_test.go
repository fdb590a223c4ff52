package state

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"InkBoard/internal/geom"
)

func begin(p geom.Point) PointerEvent { return PointerEvent{Kind: EventBegin, Pos: p} }
func cont(p geom.Point) PointerEvent  { return PointerEvent{Kind: EventContinue, Pos: p} }
func end(p geom.Point) PointerEvent   { return PointerEvent{Kind: EventEnd, Pos: p} }

func TestEngineDrawLifecycle(t *testing.T) {
	e := NewEngine()
	e.SetColor(color.RGBA{R: 255, A: 255})
	e.SetWidth(4)

	e.Pointer(begin(geom.Pt(0, 0)))
	if e.Len() != 1 {
		t.Fatalf("begin: collection has %d strokes, want 1", e.Len())
	}
	e.Pointer(cont(geom.Pt(10, 0)))
	e.Pointer(cont(geom.Pt(11, 0))) // under min spacing, dropped
	e.Pointer(cont(geom.Pt(20, 0)))
	e.Pointer(end(geom.Pt(20, 0)))

	got := e.Strokes()
	if len(got) != 1 {
		t.Fatalf("got %d strokes, want 1", len(got))
	}
	want := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(20, 0)}
	if d := cmp.Diff(want, got[0].Points); d != "" {
		t.Errorf("points (-want +got):\n%s", d)
	}
	if got[0].Color != (color.RGBA{R: 255, A: 255}) || got[0].Width != 4 {
		t.Error("stroke must carry the pen color and width at begin time")
	}

	// End closed the stroke: later continues must not mutate it.
	e.Pointer(cont(geom.Pt(100, 100)))
	if len(e.Strokes()[0].Points) != 3 {
		t.Error("continue after end must be ignored")
	}
}

func TestEngineClickLeavesNoStroke(t *testing.T) {
	e := NewEngine()
	e.Pointer(begin(geom.Pt(5, 5)))
	e.Pointer(end(geom.Pt(5, 5)))
	if e.Len() != 0 {
		t.Fatalf("a bare click left %d strokes, want 0", e.Len())
	}

	// Same for a wiggle too small for the simplifier to accept.
	e.Pointer(begin(geom.Pt(5, 5)))
	e.Pointer(cont(geom.Pt(6, 5)))
	e.Pointer(end(geom.Pt(6, 5)))
	if e.Len() != 0 {
		t.Fatalf("a sub-spacing drag left %d strokes, want 0", e.Len())
	}

	// A real drag still survives its end event.
	draw(e, geom.Pt(0, 0), geom.Pt(50, 0))
	if e.Len() != 1 {
		t.Fatalf("got %d strokes, want 1", e.Len())
	}
}

func TestEngineSnapshotIsolation(t *testing.T) {
	e := NewEngine()
	e.Pointer(begin(geom.Pt(0, 0)))
	snap := e.Strokes()
	before := len(snap[0].Points)

	e.Pointer(cont(geom.Pt(50, 0)))
	if len(snap[0].Points) != before {
		t.Error("mutation leaked into an earlier snapshot")
	}
}

func TestEngineStrokeErase(t *testing.T) {
	e := NewEngine()
	draw(e, geom.Pt(0, 0), geom.Pt(100, 0))
	draw(e, geom.Pt(0, 50), geom.Pt(100, 50))
	draw(e, geom.Pt(0, 100), geom.Pt(100, 100))
	before := e.Strokes()

	e.SetTool(ToolEraserStroke)
	e.SetEraserRadius(5)
	e.Pointer(begin(geom.Pt(50, 50)))

	got := e.Strokes()
	if len(got) != 2 {
		t.Fatalf("got %d strokes, want 2", len(got))
	}
	if got[0].ID != before[0].ID || got[1].ID != before[2].ID {
		t.Error("surviving strokes must be untouched, in order")
	}
	for i, want := range [][]geom.Point{before[0].Points, before[2].Points} {
		if d := cmp.Diff(want, got[i].Points); d != "" {
			t.Errorf("stroke %d points (-want +got):\n%s", i, d)
		}
	}

	// Erasing over empty space deletes nothing.
	e.Pointer(cont(geom.Pt(500, 500)))
	if e.Len() != 2 {
		t.Error("miss must not remove anything")
	}
}

func TestEngineStrokeEraseTopmost(t *testing.T) {
	e := NewEngine()
	draw(e, geom.Pt(0, 0), geom.Pt(100, 0))
	draw(e, geom.Pt(0, 1), geom.Pt(100, 1))
	bottom := e.Strokes()[0].ID

	e.SetTool(ToolEraserStroke)
	e.Pointer(begin(geom.Pt(50, 0)))

	got := e.Strokes()
	if len(got) != 1 || got[0].ID != bottom {
		t.Error("stroke erase must take the topmost hit")
	}
}

func TestEnginePartialErase(t *testing.T) {
	e := NewEngine()
	draw(e, geom.Pt(0, 0), geom.Pt(100, 0))

	e.SetTool(ToolEraserPartial)
	e.SetEraserRadius(10)
	e.Pointer(begin(geom.Pt(50, 0)))

	got := e.Strokes()
	if len(got) != 2 {
		t.Fatalf("got %d strokes, want 2", len(got))
	}
	diffPoints(t, got[0].Points, [][2]float32{{0, 0}, {40, 0}})
	diffPoints(t, got[1].Points, [][2]float32{{60, 0}, {100, 0}})

	// Dragging on erases from the already-fragmented collection.
	e.Pointer(cont(geom.Pt(20, 0)))
	got = e.Strokes()
	if len(got) != 3 {
		t.Fatalf("after drag: got %d strokes, want 3", len(got))
	}
	diffPoints(t, got[0].Points, [][2]float32{{0, 0}, {10, 0}})
	diffPoints(t, got[1].Points, [][2]float32{{30, 0}, {40, 0}})
	diffPoints(t, got[2].Points, [][2]float32{{60, 0}, {100, 0}})
}

func TestEnginePartialEraseMissIsIdempotent(t *testing.T) {
	e := NewEngine()
	draw(e, geom.Pt(0, 0), geom.Pt(100, 0))
	draw(e, geom.Pt(0, 50), geom.Pt(100, 50), geom.Pt(50, 80))
	before := e.Strokes()

	e.SetTool(ToolEraserPartial)
	e.SetEraserRadius(10)
	e.Pointer(begin(geom.Pt(500, 500)))

	got := e.Strokes()
	if len(got) != len(before) {
		t.Fatalf("got %d strokes, want %d", len(got), len(before))
	}
	for i := range before {
		if got[i].ID != before[i].ID {
			t.Errorf("stroke %d: id changed from %q to %q", i, before[i].ID, got[i].ID)
		}
		if d := cmp.Diff(before[i].Points, got[i].Points); d != "" {
			t.Errorf("stroke %d points (-want +got):\n%s", i, d)
		}
	}
}

func TestEngineClear(t *testing.T) {
	e := NewEngine()
	draw(e, geom.Pt(0, 0), geom.Pt(100, 0))
	e.Clear()
	if e.Len() != 0 {
		t.Error("clear must drop every stroke")
	}
}

func draw(e *Engine, pts ...geom.Point) {
	e.SetTool(ToolPen)
	e.Pointer(begin(pts[0]))
	for _, p := range pts[1:] {
		e.Pointer(cont(p))
	}
	e.Pointer(end(pts[len(pts)-1]))
}
