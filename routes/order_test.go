package routes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/routes"
)

func TestValidatePermutation(t *testing.T) {
	require.NoError(t, routes.ValidatePermutation([]int{2, 0, 1}, 3))
	require.NoError(t, routes.ValidatePermutation(nil, 0))

	cases := []struct {
		name string
		perm []int
		n    int
	}{
		{"short", []int{0, 1}, 3},
		{"long", []int{0, 1, 2, 3}, 3},
		{"out of range", []int{0, 1, 3}, 3},
		{"negative index", []int{0, -1, 2}, 3},
		{"duplicate", []int{0, 1, 1}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, routes.ValidatePermutation(tc.perm, tc.n), routes.ErrDimensionMismatch)
		})
	}
	assert.ErrorIs(t, routes.ValidatePermutation(nil, -1), routes.ErrNegativeSize)
}

func TestReorder(t *testing.T) {
	p := geom.Path{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(1, 0)}

	got, err := routes.Reorder(p, []int{0, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, geom.Path{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1)}, got)
	assert.Equal(t, 2.0, geom.PathLength(got))
	// Input untouched.
	assert.Equal(t, geom.Pt(1, 1), p[1])

	_, err = routes.Reorder(p, []int{0, 0, 1})
	assert.ErrorIs(t, err, routes.ErrDimensionMismatch)
}
