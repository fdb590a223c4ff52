package geom

import "math"

// Point is a position on the board in canvas units.
type Point struct{ X, Y float32 }

// Pt returns the point (x, y).
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(float64(p.X-o.X), float64(p.Y-o.Y))
}

// DistanceSquared returns the squared euclidean distance between two points.
func (p Point) DistanceSquared(o Point) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return dx*dx + dy*dy
}

// Lerp linearly interpolates from p to o by t.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X + float32(t)*(o.X-p.X),
		Y: p.Y + float32(t)*(o.Y-p.Y),
	}
}

// SegmentDistance returns the distance from p to the segment ab.
// The projection of p onto the segment's line is clamped to the
// segment, so endpoints are handled without special cases. A
// zero-length segment degenerates to point distance.
func SegmentDistance(p, a, b Point) float64 {
	abx := float64(b.X - a.X)
	aby := float64(b.Y - a.Y)
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := (float64(p.X-a.X)*abx + float64(p.Y-a.Y)*aby) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Lerp(b, t))
}
