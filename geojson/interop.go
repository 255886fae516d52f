package geojson

import (
	"math"

	tg "github.com/tidwall/geojson"
	"github.com/tidwall/geojson/geometry"

	"github.com/reoring/stacskema/stac"
)

// ToObject converts a validated geometry into a tidwall/geojson object for
// spatial predicates. Rings are passed through unchanged; members of a
// GeometryCollection without positions are left out.
func ToObject(g Geometry) tg.Object {
	switch g := g.(type) {
	case Point:
		return tg.NewPoint(toPoint(g.Coordinates))
	case MultiPoint:
		return tg.NewMultiPoint(toPoints(g.Coordinates))
	case LineString:
		return tg.NewLineString(geometry.NewLine(toPoints(g.Coordinates), nil))
	case MultiLineString:
		lines := make([]*geometry.Line, len(g.Coordinates))
		for i, l := range g.Coordinates {
			lines[i] = geometry.NewLine(toPoints(l), nil)
		}
		return tg.NewMultiLineString(lines)
	case Polygon:
		return tg.NewPolygon(toPoly(g.Coordinates))
	case MultiPolygon:
		polys := make([]*geometry.Poly, len(g.Coordinates))
		for i, p := range g.Coordinates {
			polys[i] = toPoly(p)
		}
		return tg.NewMultiPolygon(polys)
	case GeometryCollection:
		objs := make([]tg.Object, 0, len(g.Geometries))
		for _, c := range g.Geometries {
			if hasPositions(c) {
				objs = append(objs, ToObject(c))
			}
		}
		return tg.NewGeometryCollection(objs)
	}
	return nil
}

// Bounds returns the 2D bounding box of g, or nil when g has no positions.
func Bounds(g Geometry) stac.BBox {
	if g == nil || !hasPositions(g) {
		return nil
	}
	if gc, ok := g.(GeometryCollection); ok {
		var out stac.BBox
		for _, c := range gc.Geometries {
			out = union(out, Bounds(c))
		}
		return out
	}
	obj := ToObject(g)
	if obj == nil {
		return nil
	}
	r := obj.Rect()
	return stac.BBox{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y}
}

// Intersects reports whether a and b share at least one point.
func Intersects(a, b Geometry) bool {
	if !hasPositions(a) || !hasPositions(b) {
		return false
	}
	return ToObject(a).Intersects(ToObject(b))
}

// Contains reports whether b lies entirely within a.
func Contains(a, b Geometry) bool {
	if !hasPositions(a) || !hasPositions(b) {
		return false
	}
	return ToObject(a).Contains(ToObject(b))
}

// ComputedBBox returns f.BBox when set, otherwise the bounds of its geometry.
func (f Feature) ComputedBBox() stac.BBox {
	if f.BBox != nil {
		return f.BBox
	}
	return Bounds(f.Geometry)
}

func union(a, b stac.BBox) stac.BBox {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return stac.BBox{
		math.Min(a[0], b[0]), math.Min(a[1], b[1]),
		math.Max(a[2], b[2]), math.Max(a[3], b[3]),
	}
}

func hasPositions(g Geometry) bool {
	switch g := g.(type) {
	case Point:
		return true
	case MultiPoint:
		return len(g.Coordinates) > 0
	case LineString:
		return len(g.Coordinates) > 0
	case MultiLineString:
		for _, l := range g.Coordinates {
			if len(l) > 0 {
				return true
			}
		}
	case Polygon:
		return len(g.Coordinates) > 0 && len(g.Coordinates[0]) > 0
	case MultiPolygon:
		for _, p := range g.Coordinates {
			if len(p) > 0 && len(p[0]) > 0 {
				return true
			}
		}
	case GeometryCollection:
		for _, c := range g.Geometries {
			if hasPositions(c) {
				return true
			}
		}
	}
	return false
}

func toPoint(c Coordinate) geometry.Point { return geometry.Point{X: c[0], Y: c[1]} }

func toPoints(cs []Coordinate) []geometry.Point {
	out := make([]geometry.Point, len(cs))
	for i, c := range cs {
		out[i] = toPoint(c)
	}
	return out
}

func toPoly(rs [][]Coordinate) *geometry.Poly {
	if len(rs) == 0 {
		return geometry.NewPoly(nil, nil, nil)
	}
	var holes [][]geometry.Point
	for _, h := range rs[1:] {
		holes = append(holes, toPoints(h))
	}
	return geometry.NewPoly(toPoints(rs[0]), holes, nil)
}
