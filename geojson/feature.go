package geojson

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	j "github.com/goccy/go-json"

	stacskema "github.com/reoring/stacskema"
	"github.com/reoring/stacskema/dsl"
	js "github.com/reoring/stacskema/jsonschema"
	"github.com/reoring/stacskema/stac"
)

// Feature is a geometry with metadata.
type Feature struct {
	Geometry   Geometry
	Properties map[string]any
	ID         string
	BBox       stac.BBox
}

// Type always returns TypeFeature.
func (Feature) Type() Type { return TypeFeature }

var featureObject = dsl.Object().
	Field("type", dsl.SchemaOf[string](dsl.Literal(string(TypeFeature)))).
	Field("geometry", dsl.SchemaOf[Geometry](GeometrySchema())).Required().
	Field("properties", dsl.SchemaOf[map[string]any](dsl.MapAny())).
	Field("id", dsl.SchemaOf[string](featureID{})).
	Field("bbox", dsl.SchemaOf[stac.BBox](stac.BBoxSchema())).
	Title("Feature").
	UnknownStrip().
	MustBuild()

var featureSchema stacskema.Schema[Feature] = normalized[Feature]{inner: dsl.Project(featureObject, func(_ context.Context, m map[string]any) (Feature, error) {
	f := Feature{Geometry: m["geometry"].(Geometry)}
	f.Properties, _ = m["properties"].(map[string]any)
	f.ID, _ = m["id"].(string)
	f.BBox, _ = m["bbox"].(stac.BBox)
	return f, nil
})}

// FeatureSchema validates a Feature object.
func FeatureSchema() stacskema.Schema[Feature] { return featureSchema }

// ParseFeature validates a Feature. "type", when present, must be "Feature".
// A geometry exposing GeoInterface is normalized to its plain mapping before
// validation. Geometry issues are reported under /geometry.
func ParseFeature(ctx context.Context, v any) (Feature, error) {
	return featureSchema.Parse(ctx, v)
}

// GeoInterface returns the plain GeoJSON mapping of f. properties is always
// present (null when unset) and is a shallow copy of f.Properties.
func (f Feature) GeoInterface() map[string]any {
	m := map[string]any{"type": string(TypeFeature), "properties": nil}
	if f.Properties != nil {
		props := make(map[string]any, len(f.Properties))
		for k, v := range f.Properties {
			props[k] = v
		}
		m["properties"] = props
	}
	if g := ToGeoJSON(f.Geometry); g != nil {
		m["geometry"] = g
	}
	if f.ID != "" {
		m["id"] = f.ID
	}
	if f.BBox != nil {
		m["bbox"] = bboxAny(f.BBox)
	}
	return m
}

func (f Feature) MarshalJSON() ([]byte, error) { return j.Marshal(f.GeoInterface()) }

// UnmarshalJSON validates data with FeatureSchema.
func (f *Feature) UnmarshalJSON(data []byte) error {
	v, err := stacskema.ParseFrom(context.Background(), featureSchema, stacskema.JSONBytes(data))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func bboxAny(b stac.BBox) []any {
	out := make([]any, len(b))
	for i, x := range b {
		out[i] = x
	}
	return out
}

// featureID accepts strings and numbers; numbers are kept as their decimal
// text.
type featureID struct{}

func (featureID) Parse(_ context.Context, v any) (string, error) {
	switch id := v.(type) {
	case string:
		return id, nil
	case json.Number:
		return id.String(), nil
	}
	if n, ok := dsl.ToFloat64(v); ok {
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return strconv.FormatInt(int64(n), 10), nil
		}
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	}
	return "", stacskema.Issues{stacskema.NewIssue("/", stacskema.CodeInvalidType, "expected string or number", nil)}
}

func (f featureID) Validate(ctx context.Context, v any) error {
	_, err := f.Parse(ctx, v)
	return err
}

func (featureID) JSONSchema() (*js.Schema, error) {
	return &js.Schema{OneOf: []*js.Schema{{Type: "string"}, {Type: "number"}}}, nil
}
