// Package geom provides the plane geometry used to score city tours:
// Euclidean distance between two points and the length of an ordered path.
//
// 🚀 What is in here?
//
//	Point      — an immutable (x, y) pair, layout-compatible with orb.Point.
//	Path       — an ordered sequence of Points (visitation order).
//	Distance   — straight-line distance between two Points.
//	PathLength — Σ Distance(p[i], p[i+1]) over consecutive pairs (open path).
//	ClosedLength — PathLength plus the leg back to the first Point (a cycle).
//
// ✨ Guarantees:
//   - Pure functions: no state, no allocation in Distance/PathLength.
//   - Distance(a, b) == Distance(b, a) and Distance(a, a) == 0.
//   - PathLength of a Path with fewer than two Points is 0.
//   - Non-finite coordinates follow IEEE-754: NaN in, NaN out. Nothing panics.
//
// Malformed input (wrong arity, non-numeric text) can only arise where raw
// data is turned into Points. PointFrom, PathFrom and ParsePoint are those
// boundaries; they return errors wrapping ErrInvalidInput.
//
// ⚙️ Usage:
//
//	p := geom.Path{geom.Pt(0, 0), geom.Pt(3, 4), geom.Pt(6, 8)}
//	fmt.Println(geom.PathLength(p)) // 10
//
// Complexity:
//
//   - Distance:     O(1)
//   - PathLength:   O(n) time, O(1) extra space
//   - ClosedLength: O(n) time, O(1) extra space
package geom
