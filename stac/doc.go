// Package stac validates the STAC v0.9.0 metadata leaves shared by items and
// collections: Link, Asset, BBox and the ExtensionType / AssetRole
// vocabularies.
//
// Every Parse function accepts JSON-like input (map[string]any, []any,
// json.Number, Go numbers and strings) and returns either a fully validated
// value or stacskema.Issues listing every problem found.
//
// Extension fields are read under their external names and stored under
// plain Go field names:
//
//	label:assets        -> Link.Label
//	eo:bands            -> Asset.Bands
//	sar:polarizations   -> Asset.Polarizations
//	checksum:multihash  -> Asset.Multihash
//
// Asset also accepts the plain names (bands, polarizations, multihash).
// Output (ToMap, MarshalJSON) always uses the external names. Optional
// strings follow omitempty semantics: "" and a missing key are the same value.
package stac
