package routes

import (
	"errors"
	"iter"

	"github.com/katalvlaran/citytour/geom"
)

var (
	// ErrDimensionMismatch is returned when an index order does not match
	// the path it is applied to (wrong length, out of range, duplicate).
	ErrDimensionMismatch = errors.New("routes: dimension mismatch")

	// ErrTooLarge is returned when a count does not fit in uint64.
	ErrTooLarge = errors.New("routes: count overflows uint64")

	// ErrNegativeSize is returned for n < 0.
	ErrNegativeSize = errors.New("routes: negative size")
)

// Pair is an unordered 2-combination of points, A taken before B in path order.
type Pair struct {
	A, B geom.Point
}

// Routes bundles both lazy enumerations of one path.
type Routes struct {
	Permutations iter.Seq[geom.Path]
	Combinations iter.Seq[Pair]
}
