package stac

import (
	"context"

	stacskema "github.com/reoring/stacskema"
	"github.com/reoring/stacskema/dsl"
)

// ExtensionType names a STAC content extension.
// https://github.com/radiantearth/stac-spec/blob/v0.9.0/extensions/README.md#list-of-content-extensions
type ExtensionType string

const (
	ExtensionAsset    ExtensionType = "asset"
	ExtensionChecksum ExtensionType = "checksum"
	ExtensionCommons  ExtensionType = "commons"
	ExtensionContext  ExtensionType = "context"
	ExtensionCube     ExtensionType = "cube"
	ExtensionEO       ExtensionType = "eo"
	ExtensionLabel    ExtensionType = "label"
	ExtensionPC       ExtensionType = "pc"
	ExtensionProj     ExtensionType = "proj"
	ExtensionSAR      ExtensionType = "sar"
	ExtensionSat      ExtensionType = "sat"
	ExtensionSci      ExtensionType = "sci"
	ExtensionVersion  ExtensionType = "version"
	ExtensionView     ExtensionType = "view"
)

// ExtensionTypes returns every extension in declaration order.
func ExtensionTypes() []ExtensionType {
	return []ExtensionType{
		ExtensionAsset, ExtensionChecksum, ExtensionCommons, ExtensionContext,
		ExtensionCube, ExtensionEO, ExtensionLabel, ExtensionPC, ExtensionProj,
		ExtensionSAR, ExtensionSat, ExtensionSci, ExtensionVersion, ExtensionView,
	}
}

// AssetRole is a semantic role of an asset.
// https://github.com/radiantearth/stac-spec/blob/v0.9.0/extensions/asset/README.md
type AssetRole string

const (
	RoleThumbnail AssetRole = "thumbnail"
	RoleOverview  AssetRole = "overview"
	RoleData      AssetRole = "data"
	RoleMetadata  AssetRole = "metadata"
)

// AssetRoles returns every role in declaration order.
func AssetRoles() []AssetRole {
	return []AssetRole{RoleThumbnail, RoleOverview, RoleData, RoleMetadata}
}

var (
	extensionTypeSchema = dsl.Enum(ExtensionTypes()...)
	assetRoleSchema     = dsl.Enum(AssetRoles()...)
)

// ExtensionTypeSchema validates a single extension name.
func ExtensionTypeSchema() stacskema.Schema[ExtensionType] { return extensionTypeSchema }

// AssetRoleSchema validates a single asset role.
func AssetRoleSchema() stacskema.Schema[AssetRole] { return assetRoleSchema }

// ParseExtensionType fails with invalid_enum for anything outside ExtensionTypes().
func ParseExtensionType(ctx context.Context, v any) (ExtensionType, error) {
	return extensionTypeSchema.Parse(ctx, v)
}

// ParseAssetRole fails with invalid_enum for anything outside AssetRoles().
func ParseAssetRole(ctx context.Context, v any) (AssetRole, error) {
	return assetRoleSchema.Parse(ctx, v)
}
