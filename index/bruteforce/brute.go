package bruteforce

import (
	"errors"
	"fmt"

	"github.com/viant/pointdb/geo"
	"github.com/viant/pointdb/index"
)

// ErrAlreadyBuilt is returned when Build is called on a built index.
var ErrAlreadyBuilt = errors.New("bruteforce: index already built")

// Index is a linear-scan point index.
type Index struct {
	points []geo.Point
	built  bool
}

// New builds a brute-force index over a copy of points.
func New(points []geo.Point) (*Index, error) {
	i := &Index{}
	if err := i.Build(points); err != nil {
		return nil, err
	}
	return i, nil
}

// Build validates and copies points.
func (i *Index) Build(points []geo.Point) error {
	if i.built {
		return ErrAlreadyBuilt
	}
	if err := geo.Validate(points); err != nil {
		return fmt.Errorf("bruteforce: %w", err)
	}
	i.points = append([]geo.Point(nil), points...)
	i.built = true
	return nil
}

// SearchNearby scans every point and keeps those inside the query square, in
// insertion order.
func (i *Index) SearchNearby(q geo.Point, d float64) []geo.Point {
	sq := geo.NewSquare(q, d)
	if sq.Empty() {
		return nil
	}
	var out []geo.Point
	for _, p := range i.points {
		if sq.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// Points returns the indexed points in insertion order.
func (i *Index) Points() []geo.Point { return append([]geo.Point(nil), i.points...) }

// Len returns the number of indexed points.
func (i *Index) Len() int { return len(i.points) }

var _ index.Index = (*Index)(nil)
