package routes

import (
	"fmt"

	"github.com/katalvlaran/citytour/geom"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n. The empty permutation of an empty path is valid.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n < 0 {
		return ErrNegativeSize
	}
	if len(perm) != n {
		return fmt.Errorf("permutation length %d, want %d: %w", len(perm), n, ErrDimensionMismatch)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("index %d out of range at position %d: %w", v, i, ErrDimensionMismatch)
		}
		if seen[v] {
			return fmt.Errorf("index %d repeated at position %d: %w", v, i, ErrDimensionMismatch)
		}
		seen[v] = true
	}

	return nil
}

// Reorder returns a new path holding p[perm[0]], p[perm[1]], ... .
// perm must be a permutation of p's indices.
//
// Complexity: O(n) time, O(n) space.
func Reorder(p geom.Path, perm []int) (geom.Path, error) {
	if err := ValidatePermutation(perm, len(p)); err != nil {
		return nil, err
	}
	out := make(geom.Path, len(p))
	for i, j := range perm {
		out[i] = p[j]
	}

	return out, nil
}
