// Package routes enumerates candidate visitation orders of a city set.
//
// It is a standalone utility: nothing in the citytour binary imports it,
// and it never picks a "best" route. It only produces sequences lazily:
//
//   - Permutations — every ordering of the full path, lexicographic by index.
//   - Combinations — every unordered pair (i < j) of points, by index.
//
// Both are iter.Seq values; no ordering is materialised until the caller
// ranges over it, and breaking out of the loop stops the enumeration.
// Exhausting Permutations is O(n!) and is only practical for tiny n;
// PermutationCount reports the size up front (and ErrTooLarge past 20!).
//
// Index helpers ValidatePermutation and Reorder apply an explicit index
// order to a path, for callers that enumerate indices themselves.
package routes
