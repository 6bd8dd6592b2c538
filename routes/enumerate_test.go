package routes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/routes"
)

var (
	a = geom.Pt(0, 0)
	b = geom.Pt(1, 0)
	c = geom.Pt(1, 1)
)

func collectPaths(t *testing.T, p geom.Path) []geom.Path {
	t.Helper()
	var out []geom.Path
	for perm := range routes.Permutations(p) {
		out = append(out, perm)
	}

	return out
}

func TestPermutations_LexicographicOrder(t *testing.T) {
	got := collectPaths(t, geom.Path{a, b, c})
	want := []geom.Path{
		{a, b, c}, {a, c, b},
		{b, a, c}, {b, c, a},
		{c, a, b}, {c, b, a},
	}
	assert.Equal(t, want, got)
}

func TestPermutations_Sizes(t *testing.T) {
	for n := 0; n <= 6; n++ {
		p := make(geom.Path, n)
		for i := range p {
			p[i] = geom.Pt(i, i*i)
		}
		want, err := routes.PermutationCount(n)
		require.NoError(t, err)
		assert.Len(t, collectPaths(t, p), int(want), "n=%d", n)
	}
}

func TestPermutations_EmptyAndSingle(t *testing.T) {
	got := collectPaths(t, nil)
	require.Len(t, got, 1)
	assert.Empty(t, got[0])

	got = collectPaths(t, geom.Path{c})
	assert.Equal(t, []geom.Path{{c}}, got)
}

func TestPermutations_DuplicatesAreDistinctPositions(t *testing.T) {
	got := collectPaths(t, geom.Path{a, a})
	assert.Equal(t, []geom.Path{{a, a}, {a, a}}, got)
}

func TestPermutations_FreshSlices(t *testing.T) {
	var kept []geom.Path
	for perm := range routes.Permutations(geom.Path{a, b, c}) {
		kept = append(kept, perm)
		perm[0] = geom.Pt(99, 99)
	}
	// Mutating one yielded path must not disturb the next ones.
	assert.Equal(t, a, kept[2][1])
	assert.Equal(t, b, kept[5][1])
}

func TestPermutations_EarlyBreak(t *testing.T) {
	seen := 0
	for range routes.Permutations(geom.Path{a, b, c, geom.Pt(5, 5)}) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestPermutations_LengthsAreOrderDependent(t *testing.T) {
	lengths := map[float64]int{}
	for perm := range routes.Permutations(geom.Path{a, b, c}) {
		lengths[geom.PathLength(perm)]++
	}
	// abc/cba share 2, acb/bca/bac/cab differ: at least two distinct totals.
	assert.GreaterOrEqual(t, len(lengths), 2)
	assert.Equal(t, 2, lengths[2.0])
}

func TestCombinations(t *testing.T) {
	d := geom.Pt(0, 1)
	var got []routes.Pair
	for pr := range routes.Combinations(geom.Path{a, b, c, d}) {
		got = append(got, pr)
	}
	want := []routes.Pair{
		{a, b}, {a, c}, {a, d},
		{b, c}, {b, d},
		{c, d},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, routes.CombinationCount(4), uint64(len(got)))
}

func TestCombinations_TooShort(t *testing.T) {
	for _, p := range []geom.Path{nil, {a}} {
		n := 0
		for range routes.Combinations(p) {
			n++
		}
		assert.Zero(t, n)
	}
}

func TestCombinations_EarlyBreak(t *testing.T) {
	n := 0
	for range routes.Combinations(geom.Path{a, b, c}) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestEnumerate_CopiesInput(t *testing.T) {
	p := geom.Path{a, b}
	r := routes.Enumerate(p)
	p[0] = geom.Pt(42, 42)

	var first geom.Path
	for perm := range r.Permutations {
		first = perm
		break
	}
	assert.Equal(t, geom.Path{a, b}, first)

	var pairs []routes.Pair
	for pr := range r.Combinations {
		pairs = append(pairs, pr)
	}
	assert.Equal(t, []routes.Pair{{a, b}}, pairs)
}

func TestPermutationCount(t *testing.T) {
	cases := map[int]uint64{0: 1, 1: 1, 2: 2, 5: 120, 10: 3628800, 20: 2432902008176640000}
	for n, want := range cases {
		got, err := routes.PermutationCount(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}

	_, err := routes.PermutationCount(21)
	assert.ErrorIs(t, err, routes.ErrTooLarge)
	_, err = routes.PermutationCount(-1)
	assert.ErrorIs(t, err, routes.ErrNegativeSize)
}

func TestCombinationCount(t *testing.T) {
	assert.Zero(t, routes.CombinationCount(-3))
	assert.Zero(t, routes.CombinationCount(1))
	assert.Equal(t, uint64(1), routes.CombinationCount(2))
	assert.Equal(t, uint64(105), routes.CombinationCount(15))
}
