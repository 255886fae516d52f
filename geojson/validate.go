package geojson

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	stacskema "github.com/reoring/stacskema"
	"github.com/reoring/stacskema/dsl"
)

// ErrUnknownGeometryType is returned by Validate for a type name outside
// GeometryTypes(). It signals a caller bug, not invalid input, and is never
// wrapped in Issues.
var ErrUnknownGeometryType = errors.New("geojson: unknown geometry type")

// rule validates the coordinates member (the geometries member for
// GeometryCollection) of one geometry type. Issue paths are relative to
// that member.
type rule func(ctx context.Context, v any) (Geometry, stacskema.Issues)

var validators map[Type]rule

func init() {
	validators = map[Type]rule{
		TypePoint:              validatePoint,
		TypeMultiPoint:         validateMultiPoint,
		TypeLineString:         validateLineString,
		TypeMultiLineString:    validateMultiLineString,
		TypePolygon:            validatePolygon,
		TypeMultiPolygon:       validateMultiPolygon,
		TypeGeometryCollection: validateGeometryCollection,
	}
	geometryUnion = buildGeometryUnion()
}

// Validate checks coordinates against the rules of geometry type t and
// returns the immutable geometry. For GeometryCollection, coordinates is the
// list of member geometries. All structural and semantic violations are
// returned together as stacskema.Issues.
func Validate(ctx context.Context, t Type, coordinates any) (Geometry, error) {
	fn, ok := validators[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGeometryType, t)
	}
	g, iss := fn(ctx, coordinates)
	if len(iss) > 0 {
		if stacskema.IsFailFast(ctx) {
			iss = iss[:1]
		}
		return nil, iss
	}
	return g, nil
}

func validatePoint(_ context.Context, v any) (Geometry, stacskema.Issues) {
	c, iss := decodePosition(v)
	if len(iss) > 0 {
		return nil, iss
	}
	return Point{Coordinates: c}, nil
}

func validateMultiPoint(_ context.Context, v any) (Geometry, stacskema.Issues) {
	cs, iss := decodePositions(v)
	if len(iss) > 0 {
		return nil, iss
	}
	return MultiPoint{Coordinates: cs}, nil
}

func validateLineString(_ context.Context, v any) (Geometry, stacskema.Issues) {
	cs, iss := decodePositions(v)
	if len(iss) > 0 {
		return nil, iss
	}
	if iss := checkLineString("/", cs); len(iss) > 0 {
		return nil, iss
	}
	return LineString{Coordinates: cs}, nil
}

func validateMultiLineString(_ context.Context, v any) (Geometry, stacskema.Issues) {
	lines, iss := decodeLines(v)
	if len(iss) > 0 {
		return nil, iss
	}
	for i, l := range lines {
		iss = append(iss, checkLineString(index("/", i), l)...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return MultiLineString{Coordinates: lines}, nil
}

func validatePolygon(_ context.Context, v any) (Geometry, stacskema.Issues) {
	rs, iss := decodeLines(v)
	if len(iss) > 0 {
		return nil, iss
	}
	if iss := checkPolygon("/", rs); len(iss) > 0 {
		return nil, iss
	}
	return Polygon{Coordinates: rs}, nil
}

func validateMultiPolygon(_ context.Context, v any) (Geometry, stacskema.Issues) {
	polys, iss := decodePolygons(v)
	if len(iss) > 0 {
		return nil, iss
	}
	for i, p := range polys {
		iss = append(iss, checkPolygon(index("/", i), p)...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return MultiPolygon{Coordinates: polys}, nil
}

func validateGeometryCollection(ctx context.Context, v any) (Geometry, stacskema.Issues) {
	items, ok := dsl.AsSlice(v)
	if !ok {
		return nil, stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected an array of geometries", nil)}
	}
	var iss stacskema.Issues
	geoms := make([]Geometry, 0, len(items))
	for i, it := range items {
		g, err := ParseGeometry(ctx, it)
		if err != nil {
			iss = append(iss, stacskema.Rebase(index("", i), stacskema.IssuesFromErr("/", err))...)
			continue
		}
		geoms = append(geoms, g)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return GeometryCollection{Geometries: geoms}, nil
}

// ---- semantic rules ----

func checkLineString(path string, line []Coordinate) stacskema.Issues {
	if len(line) >= 2 {
		return nil
	}
	return stacskema.Issues{stacskema.NewIssue(path, stacskema.CodeInvalidGeometry,
		"a LineString must have two or more positions",
		map[string]any{"rule": "line_min_positions", "len": len(line)})}
}

func checkRing(path string, ring []Coordinate) stacskema.Issues {
	iss := checkLineString(path, ring)
	if len(ring) < 4 {
		iss = append(iss, stacskema.NewIssue(path, stacskema.CodeInvalidGeometry,
			"a LinearRing must have four or more positions",
			map[string]any{"rule": "ring_min_positions", "len": len(ring)}))
	}
	if n := len(ring); n > 0 && ring[0] != ring[n-1] {
		iss = append(iss, stacskema.NewIssue(path, stacskema.CodeInvalidGeometry,
			"the first and last positions of a LinearRing must be equal",
			map[string]any{"rule": "ring_closed"}))
	}
	return iss
}

func checkPolygon(path string, rs [][]Coordinate) stacskema.Issues {
	var iss stacskema.Issues
	for i, r := range rs {
		iss = append(iss, checkRing(index(path, i), r)...)
	}
	return iss
}

// ---- structural decoding ----

func decodePosition(v any) (Coordinate, stacskema.Issues) {
	var c Coordinate
	s, ok := dsl.AsSlice(v)
	if !ok {
		return c, stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected a position [longitude, latitude]", nil)}
	}
	if len(s) != 2 {
		return c, stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeLengthMismatch, "a position must have exactly 2 values",
			map[string]any{"len": len(s), "accepted": []int{2}})}
	}
	var iss stacskema.Issues
	for i, x := range s {
		f, ok := dsl.ToFloat64(x)
		if !ok {
			iss = append(iss, stacskema.NewIssue(index("", i), stacskema.CodeInvalidType, "expected finite number", nil))
			continue
		}
		c[i] = f
	}
	return c, iss
}

func decodePositions(v any) ([]Coordinate, stacskema.Issues) {
	s, ok := dsl.AsSlice(v)
	if !ok {
		return nil, stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected an array of positions", nil)}
	}
	var iss stacskema.Issues
	out := make([]Coordinate, len(s))
	for i, x := range s {
		c, ci := decodePosition(x)
		if len(ci) > 0 {
			iss = append(iss, stacskema.Rebase(index("", i), ci)...)
			continue
		}
		out[i] = c
	}
	return out, iss
}

func decodeLines(v any) ([][]Coordinate, stacskema.Issues) {
	s, ok := dsl.AsSlice(v)
	if !ok {
		return nil, stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected an array of position arrays", nil)}
	}
	var iss stacskema.Issues
	out := make([][]Coordinate, len(s))
	for i, x := range s {
		cs, ci := decodePositions(x)
		if len(ci) > 0 {
			iss = append(iss, stacskema.Rebase(index("", i), ci)...)
			continue
		}
		out[i] = cs
	}
	return out, iss
}

func decodePolygons(v any) ([][][]Coordinate, stacskema.Issues) {
	s, ok := dsl.AsSlice(v)
	if !ok {
		return nil, stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected an array of polygons", nil)}
	}
	var iss stacskema.Issues
	out := make([][][]Coordinate, len(s))
	for i, x := range s {
		rs, ci := decodeLines(x)
		if len(ci) > 0 {
			iss = append(iss, stacskema.Rebase(index("", i), ci)...)
			continue
		}
		out[i] = rs
	}
	return out, iss
}

func index(base string, i int) string {
	if base == "/" {
		base = ""
	}
	return base + "/" + strconv.Itoa(i)
}
