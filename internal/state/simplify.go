package state

import "InkBoard/internal/geom"

// DefaultMinDistance is the spacing filter applied to incoming pen
// samples, in canvas units.
const DefaultMinDistance = 3

// ShouldAppend reports whether a new pointer sample is far enough
// from the last recorded point to be worth keeping. Raw pointer input
// arrives as bursts of near-duplicate positions; dropping them keeps
// strokes small and spares the segment walks in hit-testing and
// splitting.
func ShouldAppend(last, candidate geom.Point, minDistance float64) bool {
	return last.Distance(candidate) >= minDistance
}
