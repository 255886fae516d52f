package stac

import (
	"context"

	stacskema "github.com/reoring/stacskema"
	"github.com/reoring/stacskema/dsl"
)

// BBox is a 2D (minx, miny, maxx, maxy) or 3D (minx, miny, minz, maxx, maxy,
// maxz) bounding box. Parsed values always hold 4 or 6 elements.
type BBox []float64

// Is3D reports whether b carries elevation bounds.
func (b BBox) Is3D() bool { return len(b) == 6 }

// Rect returns the horizontal extent regardless of dimensionality.
func (b BBox) Rect() (minX, minY, maxX, maxY float64) {
	if b.Is3D() {
		return b[0], b[1], b[3], b[4]
	}
	return b[0], b[1], b[2], b[3]
}

var bboxSchema = dsl.Project(
	dsl.Array(dsl.Number()).Len(4, 6),
	func(_ context.Context, v []float64) (BBox, error) { return BBox(v), nil },
)

// BBoxSchema validates a bounding box.
func BBoxSchema() stacskema.Schema[BBox] { return bboxSchema }

// ParseBBox accepts a numeric sequence of exactly 4 or 6 elements; any other
// length fails with length_mismatch, non-numeric elements with invalid_type.
func ParseBBox(ctx context.Context, v any) (BBox, error) {
	return bboxSchema.Parse(ctx, v)
}
