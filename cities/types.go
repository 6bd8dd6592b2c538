package cities

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citytour/geom"
)

var (
	// ErrEmptySet is returned when a set holds no cities.
	ErrEmptySet = errors.New("cities: empty set")

	// ErrDuplicateName is returned when two cities in one set share a name.
	ErrDuplicateName = errors.New("cities: duplicate city name")

	// ErrUnknownCount is returned by Table.Lookup for a count with no set.
	ErrUnknownCount = errors.New("cities: no set for city count")

	// ErrMalformedTable is returned when the table document is inconsistent.
	ErrMalformedTable = errors.New("cities: malformed table")

	// ErrBoundTooSmall is returned when a bound cannot hold the requested
	// number of distinct integer locations.
	ErrBoundTooSmall = errors.New("cities: bound too small")

	// ErrBoundTooLarge is returned for bounds reaching past ±2^53, where
	// float64 no longer holds every integer.
	ErrBoundTooLarge = errors.New("cities: bound too large")

	// ErrUnsupportedGeometry is returned for GeoJSON features that are not points.
	ErrUnsupportedGeometry = errors.New("cities: unsupported geometry")
)

// City is a named location.
type City struct {
	Name     string
	Location geom.Point
}

// Set is an ordered, named collection of cities.
type Set struct {
	Name   string
	Cities []City
}

// Len returns the number of cities.
func (s Set) Len() int { return len(s.Cities) }

// Path returns the city locations in set order.
//
// Complexity: O(n) time, O(n) space.
func (s Set) Path() geom.Path {
	p := make(geom.Path, len(s.Cities))
	for i := range s.Cities {
		p[i] = s.Cities[i].Location
	}

	return p
}

// Validate reports ErrEmptySet for a set without cities and
// ErrDuplicateName when two non-empty names collide.
//
// Complexity: O(n) time, O(n) space.
func (s Set) Validate() error {
	if len(s.Cities) == 0 {
		return fmt.Errorf("set %q: %w", s.Name, ErrEmptySet)
	}
	seen := make(map[string]struct{}, len(s.Cities))
	for i := range s.Cities {
		name := s.Cities[i].Name
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("set %q: city %q: %w", s.Name, name, ErrDuplicateName)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// cityName returns the default label for the i-th city (0-based).
func cityName(i int) string {
	return fmt.Sprintf("c%02d", i+1)
}
