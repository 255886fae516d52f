package geojson

import (
	"context"

	j "github.com/goccy/go-json"

	stacskema "github.com/reoring/stacskema"
	"github.com/reoring/stacskema/dsl"
	"github.com/reoring/stacskema/stac"
)

// FeatureCollection is an ordered list of features.
type FeatureCollection struct {
	Features []Feature
	BBox     stac.BBox
}

// Type always returns TypeFeatureCollection.
func (FeatureCollection) Type() Type { return TypeFeatureCollection }

var collectionObject = dsl.Object().
	Field("type", dsl.SchemaOf[string](dsl.Literal(string(TypeFeatureCollection)))).
	Field("features", dsl.ArrayOf[Feature](featureSchema)).Required().
	Field("bbox", dsl.SchemaOf[stac.BBox](stac.BBoxSchema())).
	Title("FeatureCollection").
	UnknownStrip().
	MustBuild()

var collectionSchema stacskema.Schema[FeatureCollection] = normalized[FeatureCollection]{inner: dsl.Project(collectionObject, func(_ context.Context, m map[string]any) (FeatureCollection, error) {
	fc := FeatureCollection{Features: m["features"].([]Feature)}
	fc.BBox, _ = m["bbox"].(stac.BBox)
	return fc, nil
})}

// FeatureCollectionSchema validates a FeatureCollection object.
func FeatureCollectionSchema() stacskema.Schema[FeatureCollection] { return collectionSchema }

// ParseFeatureCollection validates every feature independently and reports
// all of their issues under /features/<i>. Feature order is preserved.
func ParseFeatureCollection(ctx context.Context, v any) (FeatureCollection, error) {
	return collectionSchema.Parse(ctx, v)
}

func (fc FeatureCollection) GeoInterface() map[string]any {
	feats := make([]any, len(fc.Features))
	for i, f := range fc.Features {
		feats[i] = f.GeoInterface()
	}
	m := map[string]any{"type": string(TypeFeatureCollection), "features": feats}
	if fc.BBox != nil {
		m["bbox"] = bboxAny(fc.BBox)
	}
	return m
}

func (fc FeatureCollection) MarshalJSON() ([]byte, error) { return j.Marshal(fc.GeoInterface()) }

// UnmarshalJSON validates data with FeatureCollectionSchema.
func (fc *FeatureCollection) UnmarshalJSON(data []byte) error {
	v, err := stacskema.ParseFrom(context.Background(), collectionSchema, stacskema.JSONBytes(data))
	if err != nil {
		return err
	}
	*fc = v
	return nil
}
