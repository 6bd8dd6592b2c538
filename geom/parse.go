package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// PointFrom converts a raw coordinate slice into a Point.
// The slice must hold exactly two values (x, y).
//
// Complexity: O(1).
func PointFrom(xy []float64) (Point, error) {
	if len(xy) != 2 {
		return Point{}, fmt.Errorf("point needs 2 coordinates, got %d: %w", len(xy), ErrInvalidInput)
	}

	return Point{xy[0], xy[1]}, nil
}

// PathFrom converts rows of raw coordinates into a Path. The first
// malformed row is reported with its index.
//
// Complexity: O(n) time, O(n) space.
func PathFrom(xys [][]float64) (Path, error) {
	out := make(Path, len(xys))

	var (
		i   int
		err error
	)
	for i = range xys {
		if out[i], err = PointFrom(xys[i]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	return out, nil
}

// ParsePoint parses text such as "3,4", "3 4" or "(3, 4)" into a Point.
// Exactly two numeric fields are required. "NaN" and "Inf" are accepted
// as numbers and flow through the geometry per IEEE-754.
//
// Complexity: O(len(s)).
func ParsePoint(s string) (Point, error) {
	fields := strings.FieldsFunc(s, isCoordSeparator)
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("parse point %q: want 2 fields, got %d: %w", s, len(fields), ErrInvalidInput)
	}

	var (
		xy  [2]float64
		err error
	)
	for i := range fields {
		if xy[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
			return Point{}, fmt.Errorf("parse point %q: field %d: %w", s, i, ErrInvalidInput)
		}
	}

	return Point(xy), nil
}

// isCoordSeparator reports the runes that split "(x, y)" style input.
func isCoordSeparator(r rune) bool {
	switch r {
	case ',', ' ', '\t', '(', ')', '[', ']':
		return true
	}

	return false
}
