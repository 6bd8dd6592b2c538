// Package citytour is a small toolkit around Travelling Salesman Problem
// city sets: plane geometry to score a tour, city-set sources and formats,
// a catalog to keep sets around, and a headless viewer session.
//
// 🚀 What is citytour?
//
//	geom/    — Point, Path, Distance, PathLength, ClosedLength
//	routes/  — lazy permutations and 2-combinations of a Path (iter.Seq)
//	cities/  — builtin table, random sets, GeoJSON / OSM input, GPX output
//	catalog/ — named city-set storage: in memory or SQLite
//	config/  — YAML file + CITYTOUR_* environment overrides
//	logging/ — slog handler construction
//	viewer/  — explicitly opened session producing one overlay per frame
//
// The command in cmd/citytour ties them together:
//
//	go run ./cmd/citytour -config citytour.yaml -frames 60 -gpx tour.gpx
//
// Quick example:
//
//	A(0,0) ── B(3,4) ── C(6,8)
//
//	geom.PathLength(geom.Path{A, B, C}) == 10
//
// No solver lives here: nothing picks a best route.
package citytour
