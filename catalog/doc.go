// Package catalog persists named city sets.
//
// Two Store implementations share one contract:
//
//	NewMemory  — map-backed, guarded by a RWMutex; for tests and one-shot runs.
//	OpenSQLite — database/sql over the pure-Go modernc.org/sqlite driver.
//
// Put replaces a whole set atomically and preserves city order, since the
// order is the visitation order a path length is computed over. Get returns
// a copy the caller owns. Coordinates must be finite: SQLite stores NaN as
// NULL, so both stores reject non-finite input up front with ErrNonFinite.
package catalog
