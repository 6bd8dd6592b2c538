// Package cities holds named sets of city locations and moves them in and
// out of the formats a tour viewer meets in practice.
//
// Sources:
//
//	Builtin    — the shipped table of city-count → cities (embedded YAML).
//	Random     — deterministic generator inside a bounding box (seeded).
//	ReadGeoJSON — FeatureCollection of Point features (orb/geojson).
//	ReadOSM    — OSM XML; nodes tagged place=* become cities (paulmach/osm).
//
// Sinks:
//
//	WriteGeoJSON — FeatureCollection of Point features.
//	WriteGPX     — GPX 1.1 route in visitation order (beevik/etree).
//
// A Set is plain data. Its order is the visitation order handed to
// geom.PathLength; nothing in this package reorders cities.
//
// Geographic sources (GeoJSON, OSM, GPX) use x = longitude, y = latitude.
package cities
