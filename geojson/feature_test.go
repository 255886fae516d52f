package geojson_test

import (
	"context"
	"encoding/json"
	"testing"

	stacskema "github.com/reoring/stacskema"
	"github.com/reoring/stacskema/geojson"
)

func pointFeature(x, y float64, props map[string]any) map[string]any {
	f := map[string]any{
		"type":       "Feature",
		"geometry":   map[string]any{"type": "Point", "coordinates": []any{x, y}},
		"properties": nil,
	}
	if props != nil {
		f["properties"] = props
	}
	return f
}

func TestParseFeature(t *testing.T) {
	f, err := geojson.ParseFeature(context.Background(), pointFeature(1, 2, map[string]any{"name": "a"}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.Geometry.Type() != geojson.TypePoint || f.Properties["name"] != "a" {
		t.Fatalf("unexpected feature: %+v", f)
	}
}

func TestParseFeature_GeometryIssuesArePrefixed(t *testing.T) {
	in := map[string]any{
		"type":     "Feature",
		"geometry": map[string]any{"type": "Polygon", "coordinates": []any{pts(0, 0, 1, 0, 1, 1, 0, 1)}},
	}
	_, err := geojson.ParseFeature(context.Background(), in)
	iss, _ := stacskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/geometry/coordinates/0" {
		t.Fatalf("expected issue at /geometry/coordinates/0, got %v", err)
	}
}

func TestParseFeature_TypeAndGeometryRules(t *testing.T) {
	ctx := context.Background()
	in := pointFeature(0, 0, nil)
	delete(in, "type")
	if _, err := geojson.ParseFeature(ctx, in); err != nil {
		t.Fatalf("type is optional: %v", err)
	}

	in["type"] = "Point"
	_, err := geojson.ParseFeature(ctx, in)
	iss, _ := stacskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != stacskema.CodeInvalidLiteral || iss[0].Path != "/type" {
		t.Fatalf("expected invalid_literal at /type, got %v", err)
	}

	_, err = geojson.ParseFeature(ctx, map[string]any{"type": "Feature"})
	iss, _ = stacskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != stacskema.CodeRequired || iss[0].Path != "/geometry" {
		t.Fatalf("expected required at /geometry, got %v", err)
	}
}

func TestParseFeature_IDs(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		in   any
		want string
	}{
		{"abc", "abc"},
		{json.Number("42"), "42"},
		{7, "7"},
		{2.5, "2.5"},
	} {
		in := pointFeature(0, 0, nil)
		in["id"] = tc.in
		f, err := geojson.ParseFeature(ctx, in)
		if err != nil || f.ID != tc.want {
			t.Fatalf("id %v: got %q %v", tc.in, f.ID, err)
		}
	}
	in := pointFeature(0, 0, nil)
	in["id"] = true
	if _, err := geojson.ParseFeature(ctx, in); err == nil {
		t.Fatalf("bool ids must fail")
	}
}

func TestParseFeature_BBox(t *testing.T) {
	in := pointFeature(0, 0, nil)
	in["bbox"] = []any{0, 0, 1}
	_, err := geojson.ParseFeature(context.Background(), in)
	iss, _ := stacskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/bbox" || iss[0].Code != stacskema.CodeLengthMismatch {
		t.Fatalf("expected length_mismatch at /bbox, got %v", err)
	}
}

func TestFeature_GeoInterfaceRoundTrip(t *testing.T) {
	ctx := context.Background()
	f, err := geojson.ParseFeature(ctx, pointFeature(3, 4, map[string]any{"k": "v"}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	again, err := geojson.ParseFeature(ctx, geojson.ToGeoJSON(f))
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if again.Geometry.(geojson.Point).Coordinates != (geojson.Coordinate{3, 4}) || again.Properties["k"] != "v" {
		t.Fatalf("round trip lost data: %+v", again)
	}
	// features can also be passed as values
	if _, err := geojson.ParseFeature(ctx, f); err != nil {
		t.Fatalf("feature values are normalized: %v", err)
	}
}

func TestFeature_GeometryValueIsNormalized(t *testing.T) {
	in := map[string]any{"geometry": geojson.LineString{Coordinates: []geojson.Coordinate{{0, 0}}}}
	_, err := geojson.ParseFeature(context.Background(), in)
	iss, _ := stacskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != stacskema.CodeInvalidGeometry {
		t.Fatalf("invalid geometry values are re-validated, got %v", err)
	}
}

func TestFeature_NullProperties(t *testing.T) {
	f, err := geojson.ParseFeature(context.Background(), pointFeature(0, 0, nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := f.GeoInterface()
	if v, ok := m["properties"]; !ok || v != nil {
		t.Fatalf("properties must be present and null: %#v", m)
	}
}

func TestFeature_GeoInterfaceCopiesProperties(t *testing.T) {
	f, err := geojson.ParseFeature(context.Background(), pointFeature(0, 0, map[string]any{"k": "v"}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := f.GeoInterface()
	m["properties"].(map[string]any)["k"] = "changed"
	if f.Properties["k"] != "v" {
		t.Fatalf("feature properties must not change through GeoInterface: %v", f.Properties)
	}
}

func TestParseFeature_NilGeometryPointer(t *testing.T) {
	_, err := geojson.ParseFeature(context.Background(), map[string]any{"geometry": (*geojson.Point)(nil)})
	iss, ok := stacskema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "/geometry" || iss[0].Code != stacskema.CodeInvalidType {
		t.Fatalf("expected invalid_type at /geometry, got %v", err)
	}
	if _, err := geojson.ParseFeature(context.Background(), (*geojson.Feature)(nil)); err == nil {
		t.Fatalf("a nil feature pointer must fail")
	}
}

func TestParseGeometry_NilCollectionMember(t *testing.T) {
	gc := geojson.GeometryCollection{Geometries: []geojson.Geometry{geojson.Point{}, nil, (*geojson.Point)(nil)}}
	_, err := geojson.ParseGeometry(context.Background(), gc)
	iss, ok := stacskema.AsIssues(err)
	if !ok || len(iss) != 2 || iss[0].Path != "/geometries/1" || iss[1].Path != "/geometries/2" {
		t.Fatalf("expected issues at /geometries/1 and /geometries/2, got %v", err)
	}
	if m := (geojson.Feature{Geometry: (*geojson.Polygon)(nil)}).GeoInterface(); m["geometry"] != nil {
		t.Fatalf("nil geometry pointers render as absent: %v", m)
	}
}

func TestFeature_JSON(t *testing.T) {
	var f geojson.Feature
	if err := json.Unmarshal([]byte(`{"type":"Feature","id":12,"geometry":{"type":"Point","coordinates":[1,2]},"properties":{}}`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f.ID != "12" {
		t.Fatalf("unexpected id: %q", f.ID)
	}
	b, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back geojson.Feature
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("re-parse %s: %v", b, err)
	}
}

func TestParseFeatureCollection(t *testing.T) {
	in := map[string]any{
		"type": "FeatureCollection",
		"features": []any{
			pointFeature(0, 0, map[string]any{"i": 0}),
			map[string]any{"geometry": map[string]any{"type": "LineString", "coordinates": pts(1, 1)}},
			pointFeature(2, 2, map[string]any{"i": 2}),
			map[string]any{"geometry": map[string]any{"type": "Point", "coordinates": []any{1}}},
		},
	}
	_, err := geojson.ParseFeatureCollection(context.Background(), in)
	iss, _ := stacskema.AsIssues(err)
	if len(iss) != 2 {
		t.Fatalf("expected issues from both bad features, got %v", err)
	}
	if iss[0].Path != "/features/1/geometry/coordinates" || iss[1].Path != "/features/3/geometry/coordinates" {
		t.Fatalf("unexpected paths: %v", iss)
	}

	feats := in["features"].([]any)
	in["features"] = []any{feats[2], feats[0]}
	fc, err := geojson.ParseFeatureCollection(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fc.Features) != 2 || fc.Features[0].Properties["i"] != 2 || fc.Features[1].Properties["i"] != 0 {
		t.Fatalf("feature order must be preserved: %+v", fc.Features)
	}
}

func TestParseFeatureCollection_Empty(t *testing.T) {
	fc, err := geojson.ParseFeatureCollection(context.Background(), map[string]any{"type": "FeatureCollection", "features": []any{}})
	if err != nil || len(fc.Features) != 0 {
		t.Fatalf("unexpected: %+v %v", fc, err)
	}
	_, err = geojson.ParseFeatureCollection(context.Background(), map[string]any{"type": "FeatureCollection"})
	iss, _ := stacskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/features" {
		t.Fatalf("expected required at /features, got %v", err)
	}
}

func TestFeatureCollection_ParseFromYAML(t *testing.T) {
	doc := []byte(`
type: FeatureCollection
features:
  - type: Feature
    geometry:
      type: Polygon
      coordinates:
        - [[0, 0], [1, 0], [1, 1], [0, 0]]
    properties:
      name: square
`)
	fc, err := stacskema.ParseFrom(context.Background(), geojson.FeatureCollectionSchema(), stacskema.YAMLBytes(doc))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fc.Features) != 1 || fc.Features[0].Geometry.Type() != geojson.TypePolygon {
		t.Fatalf("unexpected collection: %+v", fc)
	}
}
