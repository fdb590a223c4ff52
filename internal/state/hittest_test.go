package state

import (
	"testing"

	"InkBoard/internal/geom"
)

func TestFindStrokeAt(t *testing.T) {
	s := testStroke(geom.Pt(0, 0), geom.Pt(100, 0))
	strokes := []Stroke{s}

	if got := FindStrokeAt(geom.Pt(50, 5), strokes, 10); got != s.ID {
		t.Errorf("got %q, want %q", got, s.ID)
	}
	if got := FindStrokeAt(geom.Pt(50, 50), strokes, 10); got != "" {
		t.Errorf("got %q, want no hit", got)
	}
}

func TestFindStrokeAtIncludesHalfWidth(t *testing.T) {
	s := testStroke(geom.Pt(0, 0), geom.Pt(100, 0))
	s.Width = 8
	strokes := []Stroke{s}

	// Threshold is radius + width/2 = 10 + 4.
	if got := FindStrokeAt(geom.Pt(50, 14), strokes, 10); got != s.ID {
		t.Error("point within the painted width must hit")
	}
	if got := FindStrokeAt(geom.Pt(50, 14.5), strokes, 10); got != "" {
		t.Error("point beyond radius + width/2 must miss")
	}
}

func TestFindStrokeAtTopmostWins(t *testing.T) {
	bottom := testStroke(geom.Pt(0, 0), geom.Pt(100, 0))
	top := testStroke(geom.Pt(0, 2), geom.Pt(100, 2))
	strokes := []Stroke{bottom, top}

	if got := FindStrokeAt(geom.Pt(50, 1), strokes, 10); got != top.ID {
		t.Errorf("got %q, want the later-drawn stroke %q", got, top.ID)
	}
}

func TestFindStrokeAtClampsToEndpoints(t *testing.T) {
	s := testStroke(geom.Pt(0, 0), geom.Pt(10, 0))
	strokes := []Stroke{s}

	// Past the endpoint the distance is measured to the endpoint
	// itself, not the infinite line.
	if got := FindStrokeAt(geom.Pt(18, 0), strokes, 9); got != s.ID {
		t.Error("query near an endpoint must hit")
	}
	if got := FindStrokeAt(geom.Pt(25, 0), strokes, 9); got != "" {
		t.Error("query on the line but far past the endpoint must miss")
	}
}
