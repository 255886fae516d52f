package geojson

import (
	"sort"

	"github.com/tidwall/rtree"

	"github.com/reoring/stacskema/stac"
)

// FeatureIndex answers bounding box queries over a FeatureCollection.
// It is not safe for concurrent mutation; build it once and query freely.
type FeatureIndex struct {
	features []Feature
	tree     rtree.RTree
	skipped  int
}

// Index builds a spatial index over fc. Each feature is keyed by its own
// bbox when present, else by the bounds of its geometry. Features without
// any position are not indexed.
func (fc FeatureCollection) Index() *FeatureIndex {
	idx := &FeatureIndex{features: fc.Features}
	for i, f := range fc.Features {
		b := f.ComputedBBox()
		if b == nil {
			idx.skipped++
			continue
		}
		minX, minY, maxX, maxY := b.Rect()
		idx.tree.Insert([2]float64{minX, minY}, [2]float64{maxX, maxY}, i)
	}
	return idx
}

// Len returns the number of indexed features.
func (idx *FeatureIndex) Len() int { return idx.tree.Len() }

// Skipped returns the number of features left out for lack of positions.
func (idx *FeatureIndex) Skipped() int { return idx.skipped }

// Search returns the features whose box intersects b, in collection order.
func (idx *FeatureIndex) Search(b stac.BBox) []Feature {
	if len(b) != 4 && len(b) != 6 {
		return nil
	}
	minX, minY, maxX, maxY := b.Rect()
	var hits []int
	idx.tree.Search([2]float64{minX, minY}, [2]float64{maxX, maxY},
		func(_, _ [2]float64, data interface{}) bool {
			hits = append(hits, data.(int))
			return true
		},
	)
	sort.Ints(hits)
	out := make([]Feature, len(hits))
	for i, h := range hits {
		out[i] = idx.features[h]
	}
	return out
}
