package state

import "InkBoard/internal/geom"

// FindStrokeAt returns the id of the topmost stroke whose polyline
// passes within radius of p, or "" if none does. Strokes are scanned
// last-drawn first, so among overlapping candidates the visually
// topmost one wins. A stroke counts as hit when any of its segments
// comes within radius plus half the stroke's own width, matching what
// the user sees painted.
func FindStrokeAt(p geom.Point, strokes []Stroke, radius float32) string {
	for i := len(strokes) - 1; i >= 0; i-- {
		s := strokes[i]
		reach := float64(radius + s.Width/2)
		for j := 0; j+1 < len(s.Points); j++ {
			if geom.SegmentDistance(p, s.Points[j], s.Points[j+1]) <= reach {
				return s.ID
			}
		}
	}
	return ""
}
