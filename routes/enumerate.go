package routes

import (
	"iter"

	"github.com/katalvlaran/citytour/geom"
)

// maxFactorial is the largest n with n! representable in uint64.
const maxFactorial = 20

// Enumerate returns both enumerations of p. Nothing is computed until a
// sequence is ranged over. The path is copied, so later edits by the
// caller do not leak into the sequences.
//
// Complexity: O(n) to copy p.
func Enumerate(p geom.Path) Routes {
	cp := p.Clone()

	return Routes{
		Permutations: Permutations(cp),
		Combinations: Combinations(cp),
	}
}

// Permutations yields every ordering of p, in lexicographic order of the
// original indices: for [a b c] it yields abc, acb, bac, bca, cab, cba.
// Each yielded Path is a fresh slice owned by the caller. An empty path
// yields exactly one empty ordering. Duplicate points are treated as
// distinct positions, so they produce repeated orderings.
//
// Complexity: O(n) per ordering, O(n!·n) to exhaust, O(n) extra space.
func Permutations(p geom.Path) iter.Seq[geom.Path] {
	return func(yield func(geom.Path) bool) {
		n := len(p)
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}

		for {
			out := make(geom.Path, n)
			for i, j := range idx {
				out[i] = p[j]
			}
			if !yield(out) {
				return
			}
			if !nextPermutation(idx) {
				return
			}
		}
	}
}

// Combinations yields every unordered pair (p[i], p[j]) with i < j, in
// row-major index order. Paths shorter than two yield nothing.
//
// Complexity: O(1) per pair, O(n²) to exhaust, O(1) extra space.
func Combinations(p geom.Path) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		var i, j int
		for i = 0; i < len(p); i++ {
			for j = i + 1; j < len(p); j++ {
				if !yield(Pair{A: p[i], B: p[j]}) {
					return
				}
			}
		}
	}
}

// nextPermutation advances idx to its lexicographic successor in place.
// It returns false (leaving idx untouched) when idx is the last ordering.
//
// Complexity: O(n) time, O(1) space.
func nextPermutation(idx []int) bool {
	var (
		n = len(idx)
		i = n - 2
		j int
	)
	// Longest non-increasing suffix starts at i+1.
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	// Rightmost successor of the pivot.
	j = n - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]

	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}

	return true
}

// PermutationCount returns n!, the number of orderings Permutations yields.
// 0! == 1. Returns ErrNegativeSize for n < 0 and ErrTooLarge for n > 20.
//
// Complexity: O(n).
func PermutationCount(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeSize
	}
	if n > maxFactorial {
		return 0, ErrTooLarge
	}

	var f uint64 = 1
	for k := 2; k <= n; k++ {
		f *= uint64(k)
	}

	return f, nil
}

// CombinationCount returns n·(n−1)/2, the number of pairs Combinations
// yields. Sizes below two have no pairs.
//
// Complexity: O(1).
func CombinationCount(n int) uint64 {
	if n < 2 {
		return 0
	}
	m := uint64(n)

	return m * (m - 1) / 2
}
