package rangetree

import (
	"sort"

	"github.com/viant/pointdb/geo"
)

// Neighbor is a point returned by Nearest with its distances to the query.
type Neighbor struct {
	Point     geo.Point
	Chebyshev float64
	Distance  float32 // Euclidean
}

// Nearest returns the points of SearchNearby(q, radius) ordered by Euclidean
// distance to q, ties broken by geo.Compare. When k > 0 at most k neighbors
// are returned.
func (d *PointDatabase) Nearest(q geo.Point, radius float64, k int) []Neighbor {
	found := d.SearchNearby(q, radius)
	out := make([]Neighbor, len(found))
	for i, p := range found {
		out[i] = Neighbor{Point: p, Chebyshev: geo.Chebyshev(p, q), Distance: geo.Euclidean(p, q)}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Distance != out[b].Distance {
			return out[a].Distance < out[b].Distance
		}
		return geo.Compare(out[a].Point, out[b].Point) < 0
	})
	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out
}
