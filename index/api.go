package index

import "github.com/viant/pointdb/geo"

// Index defines a static 2-D point index. It is built once from a point set
// and then answers L-infinity neighborhood queries; it is never modified after
// Build succeeds.
type Index interface {
	// Build constructs the index from points. Implementations copy points and
	// never reorder the caller's slice. Points with NaN or infinite
	// coordinates fail with geo.ErrInvalidPoint.
	Build(points []geo.Point) error

	// SearchNearby returns every indexed point p with |p.X-q.X| <= d and
	// |p.Y-q.Y| <= d, each stored instance once, in no particular order. A
	// negative or NaN radius matches nothing.
	SearchNearby(q geo.Point, d float64) []geo.Point

	// Points returns every indexed point.
	Points() []geo.Point

	// Len returns the number of indexed points.
	Len() int
}
