package geojson

import (
	"context"

	stacskema "github.com/reoring/stacskema"
	"github.com/reoring/stacskema/dsl"
	js "github.com/reoring/stacskema/jsonschema"
)

var geometryUnion stacskema.Schema[Geometry]

func buildGeometryUnion() stacskema.Schema[Geometry] {
	u := dsl.Union[Geometry]("type")
	for _, t := range GeometryTypes() {
		u.Variant(string(t), variantSchema(t))
	}
	return u.Build()
}

// memberName is the key holding the geometry payload.
func memberName(t Type) string {
	if t == TypeGeometryCollection {
		return "geometries"
	}
	return "coordinates"
}

func variantSchema(t Type) stacskema.Schema[Geometry] {
	member := memberName(t)
	obj := dsl.Object().
		Field("type", dsl.SchemaOf[string](dsl.Literal(string(t)))).
		Field(member, dsl.SchemaOf[Geometry](coordinatesSchema{t: t})).
		Require("type", member).
		Title(string(t)).
		UnknownStrip().
		MustBuild()
	return dsl.Project(obj, func(_ context.Context, m map[string]any) (Geometry, error) {
		return m[member].(Geometry), nil
	})
}

// coordinatesSchema adapts Validate to the Schema interface for one type.
type coordinatesSchema struct{ t Type }

func (c coordinatesSchema) Parse(ctx context.Context, v any) (Geometry, error) {
	return Validate(ctx, c.t, v)
}

func (c coordinatesSchema) Validate(ctx context.Context, v any) error {
	_, err := Validate(ctx, c.t, v)
	return err
}

func (c coordinatesSchema) JSONSchema() (*js.Schema, error) {
	if c.t == TypeGeometryCollection {
		return &js.Schema{Type: "array", Items: &js.Schema{Type: "object"}}, nil
	}
	s := &js.Schema{Type: "array", Items: &js.Schema{Type: "number"}, MinItems: js.Ptr(2), MaxItems: js.Ptr(2)}
	depth := map[Type]int{
		TypePoint: 0, TypeMultiPoint: 1, TypeLineString: 1,
		TypeMultiLineString: 2, TypePolygon: 2, TypeMultiPolygon: 3,
	}[c.t]
	for i := 0; i < depth; i++ {
		s = &js.Schema{Type: "array", Items: s}
	}
	switch c.t {
	case TypeLineString:
		s.MinItems = js.Ptr(2)
	case TypePolygon:
		s.Items.MinItems = js.Ptr(4)
	}
	return s, nil
}

// GeometrySchema validates any of the seven geometry objects, selected by
// their "type" member.
func GeometrySchema() stacskema.Schema[Geometry] { return geometryInput }

var geometryInput = normalized[Geometry]{inner: lazyGeometryUnion{}}

// ParseGeometry validates a geometry object. Values exposing GeoInterface
// (including already validated geometries) are converted to their plain
// mapping first and validated again.
func ParseGeometry(ctx context.Context, v any) (Geometry, error) {
	return geometryInput.Parse(ctx, v)
}

// lazyGeometryUnion defers to geometryUnion, which is only built in init.
type lazyGeometryUnion struct{}

func (lazyGeometryUnion) Parse(ctx context.Context, v any) (Geometry, error) {
	return geometryUnion.Parse(ctx, v)
}

func (lazyGeometryUnion) Validate(ctx context.Context, v any) error {
	return geometryUnion.Validate(ctx, v)
}

func (lazyGeometryUnion) JSONSchema() (*js.Schema, error) { return geometryUnion.JSONSchema() }

// normalized converts GeoInterfacer inputs to their plain mapping before
// running inner. Nil pointers are treated as null.
type normalized[T any] struct {
	inner stacskema.Schema[T]
}

func (n normalized[T]) Parse(ctx context.Context, v any) (T, error) {
	if gi, ok := v.(GeoInterfacer); ok {
		if m := ToGeoJSON(gi); m != nil {
			v = m
		} else {
			v = nil
		}
	}
	return n.inner.Parse(ctx, v)
}

func (n normalized[T]) Validate(ctx context.Context, v any) error {
	_, err := n.Parse(ctx, v)
	return err
}

func (n normalized[T]) JSONSchema() (*js.Schema, error) { return n.inner.JSONSchema() }
