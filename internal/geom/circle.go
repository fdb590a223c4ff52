package geom

import "math"

// Circle is an eraser query region: a center and a radius.
type Circle struct {
	Center Point
	Radius float32
}

// Contains reports whether p lies inside the circle. Points exactly
// on the boundary count as inside.
func (c Circle) Contains(p Point) bool {
	r := float64(c.Radius)
	return p.DistanceSquared(c.Center) <= r*r
}

// IntersectSegment returns the parameters t in [0, 1] at which the
// segment ab crosses the circle boundary, ascending, together with
// their count. The segment is parametrized as a + t*(b-a). Solves
// a·t² + b·t + c = 0 with a = |ab|², b = 2·(ab · (a-center)),
// c = |a-center|² - r². A zero-length segment has no intersections.
func (c Circle) IntersectSegment(a, b Point) ([2]float64, int) {
	var ts [2]float64

	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	fx := float64(a.X - c.Center.X)
	fy := float64(a.Y - c.Center.Y)
	r := float64(c.Radius)

	qa := dx*dx + dy*dy
	if qa == 0 {
		return ts, 0
	}
	qb := 2 * (dx*fx + dy*fy)
	qc := fx*fx + fy*fy - r*r

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return ts, 0
	}
	sq := math.Sqrt(disc)

	n := 0
	for _, t := range [2]float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
		if t < 0 || t > 1 {
			continue
		}
		// A tangent segment (disc == 0) reports its double root
		// twice: callers walking the roots then close a run at the
		// touch point and reopen it there, keeping both sides.
		ts[n] = t
		n++
	}
	return ts, n
}
