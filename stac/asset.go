package stac

import (
	"context"

	j "github.com/goccy/go-json"

	stacskema "github.com/reoring/stacskema"
	"github.com/reoring/stacskema/dsl"
)

// Asset is a STAC asset object.
// https://github.com/radiantearth/stac-spec/blob/v0.9.0/item-spec/item-spec.md#asset-object
type Asset struct {
	Href        string
	Type        string
	Title       string
	Description string
	Roles       []AssetRole
	// EO extension, "eo:bands".
	Bands []int
	// SAR extension, "sar:polarizations".
	Polarizations []string
	// Checksum extension, "checksum:multihash".
	Multihash string
}

var assetObject = dsl.Object().
	Field("href", dsl.SchemaOf[string](dsl.String())).Required().
	Field("type", dsl.SchemaOf[string](dsl.String())).
	Field("title", dsl.SchemaOf[string](dsl.String())).
	Field("description", dsl.SchemaOf[string](dsl.String())).
	Field("roles", dsl.ArrayOf[AssetRole](assetRoleSchema)).
	Field("bands", dsl.ArrayOf[int](dsl.Int())).Alias("eo:bands").
	Field("polarizations", dsl.ArrayOf[string](dsl.String())).Alias("sar:polarizations").
	Field("multihash", dsl.SchemaOf[string](dsl.String())).Alias("checksum:multihash").
	Title("Asset").
	UnknownStrip().
	MustBuild()

var assetSchema = dsl.Project(assetObject, func(_ context.Context, m map[string]any) (Asset, error) {
	a := Asset{Href: m["href"].(string)}
	a.Type, _ = m["type"].(string)
	a.Title, _ = m["title"].(string)
	a.Description, _ = m["description"].(string)
	a.Roles, _ = m["roles"].([]AssetRole)
	a.Bands, _ = m["bands"].([]int)
	a.Polarizations, _ = m["polarizations"].([]string)
	a.Multihash, _ = m["multihash"].(string)
	return a, nil
})

// AssetSchema validates an asset object.
func AssetSchema() stacskema.Schema[Asset] { return assetSchema }

// ParseAsset requires href. Every role must be one of AssetRoles(); the
// extension fields are accepted under their plain or external names, but not
// both at once.
func ParseAsset(ctx context.Context, v any) (Asset, error) {
	return assetSchema.Parse(ctx, v)
}

// HasRole reports whether r is among the asset's roles.
func (a Asset) HasRole(r AssetRole) bool {
	for _, x := range a.Roles {
		if x == r {
			return true
		}
	}
	return false
}

// ToMap returns the wire representation using external extension names.
// Empty optional strings are treated as absent and left out.
func (a Asset) ToMap() map[string]any {
	m := map[string]any{"href": a.Href}
	putString(m, "type", a.Type)
	putString(m, "title", a.Title)
	putString(m, "description", a.Description)
	if a.Roles != nil {
		roles := make([]any, len(a.Roles))
		for i, r := range a.Roles {
			roles[i] = string(r)
		}
		m["roles"] = roles
	}
	if a.Bands != nil {
		bands := make([]any, len(a.Bands))
		for i, b := range a.Bands {
			bands[i] = b
		}
		m["eo:bands"] = bands
	}
	if a.Polarizations != nil {
		pols := make([]any, len(a.Polarizations))
		for i, p := range a.Polarizations {
			pols[i] = p
		}
		m["sar:polarizations"] = pols
	}
	putString(m, "checksum:multihash", a.Multihash)
	return m
}

func (a Asset) MarshalJSON() ([]byte, error) { return j.Marshal(a.ToMap()) }

// UnmarshalJSON validates data with AssetSchema.
func (a *Asset) UnmarshalJSON(data []byte) error {
	v, err := stacskema.ParseFrom(context.Background(), assetSchema, stacskema.JSONBytes(data))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
