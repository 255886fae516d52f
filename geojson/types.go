package geojson

import (
	"reflect"

	j "github.com/goccy/go-json"
)

// Type is a GeoJSON object type name.
type Type string

const (
	TypePoint              Type = "Point"
	TypeMultiPoint         Type = "MultiPoint"
	TypeLineString         Type = "LineString"
	TypeMultiLineString    Type = "MultiLineString"
	TypePolygon            Type = "Polygon"
	TypeMultiPolygon       Type = "MultiPolygon"
	TypeGeometryCollection Type = "GeometryCollection"
	TypeFeature            Type = "Feature"
	TypeFeatureCollection  Type = "FeatureCollection"
)

// GeometryTypes returns the seven geometry type names in declaration order.
func GeometryTypes() []Type {
	return []Type{
		TypePoint, TypeMultiPoint, TypeLineString, TypeMultiLineString,
		TypePolygon, TypeMultiPolygon, TypeGeometryCollection,
	}
}

// Coordinate is a (longitude, latitude) position. No range check is applied.
type Coordinate [2]float64

// GeoInterfacer is implemented by values that can render themselves as a
// plain GeoJSON mapping.
type GeoInterfacer interface {
	GeoInterface() map[string]any
}

// ToGeoJSON returns the plain mapping of v, or nil when v is nil or a nil
// pointer.
func ToGeoJSON(v GeoInterfacer) map[string]any {
	if isNil(v) {
		return nil
	}
	return v.GeoInterface()
}

func isNil(v GeoInterfacer) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Geometry is one of Point, MultiPoint, LineString, MultiLineString,
// Polygon, MultiPolygon or GeometryCollection.
type Geometry interface {
	GeoInterfacer
	Type() Type
	isGeometry()
}

type Point struct {
	Coordinates Coordinate
}

type MultiPoint struct {
	Coordinates []Coordinate
}

type LineString struct {
	Coordinates []Coordinate
}

type MultiLineString struct {
	Coordinates [][]Coordinate
}

// Polygon holds the exterior ring first, then any holes.
type Polygon struct {
	Coordinates [][]Coordinate
}

type MultiPolygon struct {
	Coordinates [][][]Coordinate
}

type GeometryCollection struct {
	Geometries []Geometry
}

func (Point) Type() Type              { return TypePoint }
func (MultiPoint) Type() Type         { return TypeMultiPoint }
func (LineString) Type() Type         { return TypeLineString }
func (MultiLineString) Type() Type    { return TypeMultiLineString }
func (Polygon) Type() Type            { return TypePolygon }
func (MultiPolygon) Type() Type       { return TypeMultiPolygon }
func (GeometryCollection) Type() Type { return TypeGeometryCollection }

func (Point) isGeometry()              {}
func (MultiPoint) isGeometry()         {}
func (LineString) isGeometry()         {}
func (MultiLineString) isGeometry()    {}
func (Polygon) isGeometry()            {}
func (MultiPolygon) isGeometry()       {}
func (GeometryCollection) isGeometry() {}

func (g Point) GeoInterface() map[string]any {
	return map[string]any{"type": string(TypePoint), "coordinates": position(g.Coordinates)}
}

func (g MultiPoint) GeoInterface() map[string]any {
	return map[string]any{"type": string(TypeMultiPoint), "coordinates": positions(g.Coordinates)}
}

func (g LineString) GeoInterface() map[string]any {
	return map[string]any{"type": string(TypeLineString), "coordinates": positions(g.Coordinates)}
}

func (g MultiLineString) GeoInterface() map[string]any {
	return map[string]any{"type": string(TypeMultiLineString), "coordinates": rings(g.Coordinates)}
}

func (g Polygon) GeoInterface() map[string]any {
	return map[string]any{"type": string(TypePolygon), "coordinates": rings(g.Coordinates)}
}

func (g MultiPolygon) GeoInterface() map[string]any {
	polys := make([]any, len(g.Coordinates))
	for i, p := range g.Coordinates {
		polys[i] = rings(p)
	}
	return map[string]any{"type": string(TypeMultiPolygon), "coordinates": polys}
}

func (g GeometryCollection) GeoInterface() map[string]any {
	geoms := make([]any, len(g.Geometries))
	for i, c := range g.Geometries {
		if m := ToGeoJSON(c); m != nil {
			geoms[i] = m
		}
	}
	return map[string]any{"type": string(TypeGeometryCollection), "geometries": geoms}
}

func position(c Coordinate) []any { return []any{c[0], c[1]} }

func positions(cs []Coordinate) []any {
	out := make([]any, len(cs))
	for i, c := range cs {
		out[i] = position(c)
	}
	return out
}

func rings(rs [][]Coordinate) []any {
	out := make([]any, len(rs))
	for i, r := range rs {
		out[i] = positions(r)
	}
	return out
}

func (g Point) MarshalJSON() ([]byte, error)              { return j.Marshal(g.GeoInterface()) }
func (g MultiPoint) MarshalJSON() ([]byte, error)         { return j.Marshal(g.GeoInterface()) }
func (g LineString) MarshalJSON() ([]byte, error)         { return j.Marshal(g.GeoInterface()) }
func (g MultiLineString) MarshalJSON() ([]byte, error)    { return j.Marshal(g.GeoInterface()) }
func (g Polygon) MarshalJSON() ([]byte, error)            { return j.Marshal(g.GeoInterface()) }
func (g MultiPolygon) MarshalJSON() ([]byte, error)       { return j.Marshal(g.GeoInterface()) }
func (g GeometryCollection) MarshalJSON() ([]byte, error) { return j.Marshal(g.GeoInterface()) }
