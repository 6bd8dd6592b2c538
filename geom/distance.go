package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Distance returns the straight-line (Euclidean) distance between a and b:
//
//	sqrt((a.x−b.x)² + (a.y−b.y)²)
//
// The result is non-negative for finite input. NaN or ±Inf coordinates
// propagate through the arithmetic unchanged; no error is raised.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return planar.Distance(orb.Point(a), orb.Point(b))
}

// PathLength sums Distance over every consecutive pair (p[i], p[i+1]) for
// i in [0, len(p)−2]. The path is open: there is no leg from the last
// point back to the first. Paths with fewer than two points have length 0.
//
// Complexity: O(n) time, O(1) extra space.
func PathLength(p Path) float64 {
	var (
		total float64
		i     int
	)
	for i = 0; i+1 < len(p); i++ {
		total += Distance(p[i], p[i+1])
	}

	return total
}

// ClosedLength is PathLength plus the closing leg p[len−1] → p[0], i.e.
// the length of the cycle that returns to its starting city.
// Paths with fewer than two points have length 0.
//
// Complexity: O(n) time, O(1) extra space.
func ClosedLength(p Path) float64 {
	if len(p) < 2 {
		return 0
	}

	return PathLength(p) + Distance(p[len(p)-1], p[0])
}
