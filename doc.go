// Package stacskema validates STAC link and asset objects and GeoJSON
// geometries, features and feature collections.
//
// It provides:
//
// - A stable error model via Issues (JSON Pointer, code, message, params)
// - Token sources for JSON (go-json) and YAML (yaml.v3) with duplicate-key,
// depth and size enforcement
// - Collect mode by default, fail-fast on request
//
// Schemas live in subpackages: dsl for the building blocks, stac for STAC
// objects and enums, geojson for geometry validation and spatial helpers.
//
// Typical usage:
//
//	fc, err := stacskema.ParseFrom(ctx, geojson.FeatureCollectionSchema(), stacskema.JSONBytes(data))
//	if iss, ok := stacskema.AsIssues(err); ok {
//		for _, it := range iss {
//			fmt.Println(it.Path, it.Code, it.Message)
//		}
//	}
package stacskema
