package geom_test

import (
	"fmt"

	"github.com/katalvlaran/citytour/geom"
)

// ExampleDistance shows the classic 3-4-5 triangle.
func ExampleDistance() {
	fmt.Println(geom.Distance(geom.Pt(0, 0), geom.Pt(3, 4)))
	// Output:
	// 5
}

// ExamplePathLength compares two visitation orders of the same three
// cities. The open path never returns to its start.
func ExamplePathLength() {
	a := geom.Path{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1)}
	b := geom.Path{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(1, 0)}

	fmt.Printf("%.4f\n", geom.PathLength(a))
	fmt.Printf("%.4f\n", geom.PathLength(b))
	// Output:
	// 2.0000
	// 2.4142
}

// ExampleClosedLength scores the square as a cycle.
func ExampleClosedLength() {
	square := geom.Path{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 1), geom.Pt(1, 0)}

	fmt.Println(geom.PathLength(square), geom.ClosedLength(square))
	// Output:
	// 3 4
}

// ExampleParsePoint turns boundary text into a Point.
func ExampleParsePoint() {
	p, err := geom.ParsePoint("(533, 251)")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p)

	_, err = geom.ParsePoint("533")
	fmt.Println(err)
	// Output:
	// (533, 251)
	// parse point "533": want 2 fields, got 1: geom: invalid input
}
