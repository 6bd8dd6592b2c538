package routes_test

import (
	"fmt"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/routes"
)

// ExampleEnumerate lists every ordering and every pair of three cities.
// Nothing here chooses among them.
func ExampleEnumerate() {
	r := routes.Enumerate(geom.Path{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1)})

	for p := range r.Permutations {
		fmt.Printf("%v %.3f\n", p, geom.PathLength(p))
	}
	for pr := range r.Combinations {
		fmt.Println(pr.A, pr.B)
	}
	// Output:
	// [(0, 0) (1, 0) (1, 1)] 2.000
	// [(0, 0) (1, 1) (1, 0)] 2.414
	// [(1, 0) (0, 0) (1, 1)] 2.414
	// [(1, 0) (1, 1) (0, 0)] 2.414
	// [(1, 1) (0, 0) (1, 0)] 2.414
	// [(1, 1) (1, 0) (0, 0)] 2.000
	// (0, 0) (1, 0)
	// (0, 0) (1, 1)
	// (1, 0) (1, 1)
}
