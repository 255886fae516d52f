// Package dsl provides the schema building blocks used by the stac and
// geojson packages.
//
// Overview
//   - Primitives: String()/Int()/Number()/Enum(...)/Literal(v)/MapAny().
//   - Array(elem): element-wise validation with Min/Max or fixed lengths via Len(4, 6).
//   - Object(): declare fields in validation order with Field(...).Required(),
//     external names with Alias/AliasOnly, unknown-key policy with UnknownStrict/UnknownStrip.
//   - Union[T](discriminator): pick a variant schema by a string tag.
//   - Project(s, fn): turn the map produced by an Object into a typed value.
//   - SchemaOf[T](s): adapter from Schema[T] to AnyAdapter (to pass into Field).
//
// Error model
//
// Every schema returns stacskema.Issues. Child issues are rebased under the
// field or index that holds the child, so a bad band in an asset surfaces at
// "/eo:bands/1". Collect mode (the default) reports every issue; fail-fast
// (stacskema.WithFailFast) stops at the first one.
//
// Example
//
//	link := g.Object().
//	    Field("href", g.SchemaOf[string](g.String().NonEmpty())).Required().
//	    Field("rel", g.SchemaOf[string](g.String().NonEmpty())).Required().
//	    Field("label", g.SchemaOf[string](g.String())).AliasOnly("label:assets").
//	    UnknownStrip().
//	    MustBuild()
//	m, err := link.Parse(ctx, map[string]any{"href": "a.json", "rel": "self"})
package dsl
