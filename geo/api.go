package geo

import (
	"context"
)

// Store defines durable storage for a point set. Indexes are never persisted;
// they are rebuilt from the points a Store returns.
type Store interface {
	// AddPoints appends points to the store. Either every point is stored or
	// none is.
	AddPoints(ctx context.Context, points []Point) error

	// LoadPoints returns every stored point in insertion order.
	LoadPoints(ctx context.Context) ([]Point, error)

	// Clear removes every stored point.
	Clear(ctx context.Context) error
}
