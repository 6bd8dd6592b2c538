package geom

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"golang.org/x/exp/constraints"
)

// ErrInvalidInput is returned when raw data cannot be turned into a Point:
// wrong arity or non-numeric coordinates.
var ErrInvalidInput = errors.New("geom: invalid input")

// Point is a city location in the plane. It is a value type: copies are
// independent and a Point has no identity beyond its coordinates.
//
// The underlying layout is orb.Point ([2]float64{x, y}), so conversion to
// and from the orb stack is free.
type Point orb.Point

// Pt builds a Point from any integer or float coordinates. Integer pixel
// tables (the common shape of city data) convert without ceremony.
//
// Complexity: O(1).
func Pt[T constraints.Integer | constraints.Float](x, y T) Point {
	return Point{float64(x), float64(y)}
}

// X returns the horizontal coordinate.
func (p Point) X() float64 { return p[0] }

// Y returns the vertical coordinate.
func (p Point) Y() float64 { return p[1] }

// Orb returns p as an orb.Point.
func (p Point) Orb() orb.Point { return orb.Point(p) }

// String renders the point as "(x, y)" using the shortest float form.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p[0], p[1])
}

// Path is an ordered sequence of Points. Order is significant: it is the
// visitation order. A Path may be empty and may repeat coordinates.
type Path []Point

// Length is the method form of PathLength.
func (p Path) Length() float64 { return PathLength(p) }

// LineString returns the path as an orb.LineString (a fresh slice).
//
// Complexity: O(n) time, O(n) space.
func (p Path) LineString() orb.LineString {
	ls := make(orb.LineString, len(p))
	for i := range p {
		ls[i] = orb.Point(p[i])
	}

	return ls
}

// Bound returns the axis-aligned bounding box of the path.
// An empty path yields the zero orb.Bound.
//
// Complexity: O(n).
func (p Path) Bound() orb.Bound {
	if len(p) == 0 {
		return orb.Bound{}
	}
	b := orb.Bound{Min: orb.Point(p[0]), Max: orb.Point(p[0])}
	for i := 1; i < len(p); i++ {
		b = b.Extend(orb.Point(p[i]))
	}

	return b
}

// Clone returns an independent copy of the path. A nil path stays nil.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}
