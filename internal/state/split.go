package state

import "InkBoard/internal/geom"

// SplitByCircle cuts a stroke against an eraser circle and returns
// the surviving pieces, in original point order, as fresh strokes
// with the original's color and width. A stroke entirely outside the
// circle comes back as a single fragment with the same points; a
// stroke entirely inside comes back as nothing. Strokes with fewer
// than 2 points are degenerate and pass through untouched.
func SplitByCircle(s Stroke, center geom.Point, radius float32) []Stroke {
	if len(s.Points) < 2 {
		return []Stroke{s}
	}

	c := geom.Circle{Center: center, Radius: radius}
	var frags [][]geom.Point

	// run accumulates the fragment currently being built. It is
	// closed whenever the polyline enters the circle and reopened at
	// the point where it exits.
	var run []geom.Point
	flush := func() {
		if len(run) >= 2 {
			frags = append(frags, run)
		}
		run = nil
	}

	if !c.Contains(s.Points[0]) {
		run = append(run, s.Points[0])
	}
	for i := 1; i < len(s.Points); i++ {
		prev, next := s.Points[i-1], s.Points[i]
		ts, n := c.IntersectSegment(prev, next)
		if n == 0 {
			if !c.Contains(next) {
				run = append(run, next)
			} else {
				// The segment dipped inside without a detectable
				// root (prev was on or near the boundary).
				flush()
			}
			continue
		}
		for _, t := range ts[:n] {
			hit := prev.Lerp(next, t)
			if len(run) > 0 {
				// Entering the eraser: the boundary point ends the
				// surviving piece.
				run = append(run, hit)
				flush()
			} else {
				// Exiting: the boundary point starts a new piece.
				run = []geom.Point{hit}
			}
		}
		if !c.Contains(next) {
			run = append(run, next)
		}
	}
	flush()

	out := make([]Stroke, 0, len(frags))
	for _, pts := range frags {
		out = append(out, Stroke{
			ID:     newStrokeID(),
			Points: pts,
			Color:  s.Color,
			Width:  s.Width,
		})
	}
	return out
}

// splitAll applies SplitByCircle across a collection, replacing each
// stroke by its fragments in place. Strokes the circle never touches
// survive as themselves, id included, so an erase that hits nothing
// leaves the collection structurally unchanged.
func splitAll(strokes []Stroke, center geom.Point, radius float32) []Stroke {
	out := make([]Stroke, 0, len(strokes))
	for _, s := range strokes {
		frags := SplitByCircle(s, center, radius)
		if len(frags) == 1 && untouched(s, frags[0]) {
			out = append(out, s)
			continue
		}
		out = append(out, frags...)
	}
	return out
}

// untouched reports whether a single-fragment split is the whole
// original stroke, point for point.
func untouched(orig, frag Stroke) bool {
	if len(orig.Points) != len(frag.Points) {
		return false
	}
	for i, p := range orig.Points {
		if frag.Points[i] != p {
			return false
		}
	}
	return true
}
