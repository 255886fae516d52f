// Package geojson validates RFC 7946 geometries and wraps them into Features
// and FeatureCollections.
//
// Validate checks a type name and its coordinates against the per-type
// rules:
//
//	Point              exactly one position
//	MultiPoint         positions
//	LineString         two or more positions
//	MultiLineString    LineStrings
//	Polygon            rings, each a closed LineString of four or more positions
//	MultiPolygon       Polygons
//	GeometryCollection geometries, each validated by its own type
//
// A position is exactly two numbers (longitude, latitude). Structural issues
// (wrong nesting, non-numeric values) are reported as invalid_type or
// length_mismatch; semantic ones as invalid_geometry. Every violated rule is
// reported, each at its own JSON Pointer.
//
// Validated geometries expose GeoInterface, the plain GeoJSON mapping, so
// they can be fed back into ParseGeometry / ParseFeature or handed to other
// geometry consumers. ToObject converts them to tidwall/geojson objects for
// spatial predicates.
package geojson
