package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/citytour/cities"
)

var (
	// ErrNotFound is returned when no set has the requested name.
	ErrNotFound = errors.New("catalog: set not found")

	// ErrUnnamed is returned by Put for a set with an empty name.
	ErrUnnamed = errors.New("catalog: set has no name")

	// ErrNonFinite is returned by Put when a coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("catalog: non-finite coordinate")
)

// Store keeps city sets by name.
type Store interface {
	// Put inserts or replaces the set called s.Name.
	Put(ctx context.Context, s cities.Set) error
	// Get returns the set called name or ErrNotFound.
	Get(ctx context.Context, name string) (cities.Set, error)
	// Delete removes the set called name or returns ErrNotFound.
	Delete(ctx context.Context, name string) error
	// List returns all set names in ascending order.
	List(ctx context.Context) ([]string, error)
	// Close releases resources held by the store.
	Close() error
}

// Import puts every set into st, stopping at the first failure.
func Import(ctx context.Context, st Store, sets ...cities.Set) error {
	for _, s := range sets {
		if err := st.Put(ctx, s); err != nil {
			return fmt.Errorf("import %q: %w", s.Name, err)
		}
	}

	return nil
}

// ImportTable puts every set of t, in ascending count order.
func ImportTable(ctx context.Context, st Store, t cities.Table) error {
	sets := make([]cities.Set, 0, len(t))
	for _, n := range t.Counts() {
		sets = append(sets, t[n])
	}

	return Import(ctx, st, sets...)
}

// checkSet applies the shared Put preconditions.
func checkSet(s cities.Set) error {
	if s.Name == "" {
		return ErrUnnamed
	}
	if err := s.Validate(); err != nil {
		return err
	}
	for i, c := range s.Cities {
		if !finite(c.Location.X()) || !finite(c.Location.Y()) {
			return fmt.Errorf("set %q city %d %v: %w", s.Name, i, c.Location, ErrNonFinite)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// cloneSet deep-copies the city slice so stored data never aliases callers.
func cloneSet(s cities.Set) cities.Set {
	out := cities.Set{Name: s.Name, Cities: make([]cities.City, len(s.Cities))}
	copy(out.Cities, s.Cities)

	return out
}
