package rangetree

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/viant/pointdb/geo"
	"github.com/viant/pointdb/index"
	"github.com/viant/pointdb/internal/rangetree/tree"
)

// ErrAlreadyBuilt is returned when Build is called on a built database.
var ErrAlreadyBuilt = errors.New("rangetree: database already built")

// Stats describes the shape of the underlying range tree.
type Stats = tree.Stats

// PointDatabase is an immutable 2-D range tree over a point set.
//
// Once Build (or New) has returned, the database is read-only and safe for
// concurrent use by multiple goroutines without locking.
type PointDatabase struct {
	tree   *tree.Tree
	name   string
	logger *zerolog.Logger
}

// New builds a database over a copy of points.
func New(points []geo.Point, opts ...Option) (*PointDatabase, error) {
	d := &PointDatabase{}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.Build(points); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads every point from store and builds a database over them.
func Load(ctx context.Context, store geo.Store, opts ...Option) (*PointDatabase, error) {
	if store == nil {
		return nil, fmt.Errorf("rangetree: store is nil")
	}
	points, err := store.LoadPoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("rangetree: load points: %w", err)
	}
	return New(points, opts...)
}

// Build constructs the range tree. It may be called once, on a zero value or
// through New; the caller's slice is copied and never reordered. No partial
// structure is kept when a point is malformed.
func (d *PointDatabase) Build(points []geo.Point) error {
	if d.tree != nil {
		return ErrAlreadyBuilt
	}
	log := d.log()
	started := time.Now()
	t, err := tree.New(points)
	if err != nil {
		log.Error().Err(err).Str("index", d.Name()).Msg("point database build failed")
		return err
	}
	d.tree = t
	d.name = d.Name()
	buildsTotal.WithLabelValues(d.name).Inc()
	indexedPoints.WithLabelValues(d.name).Set(float64(t.Len()))

	if e := log.Debug(); e.Enabled() {
		stats := t.Stats()
		e.Str("index", d.name).
			Int("points", stats.Points).
			Str("size", humanize.Comma(int64(stats.Points))).
			Int("x_height", stats.XHeight).
			Int("y_nodes", stats.YNodes).
			Dur("elapsed", time.Since(started)).
			Msg("point database built")
	}
	return nil
}

// SearchNearby returns every point within Chebyshev distance radius of q,
// borders included, each stored instance once and in no particular order.
// A negative or NaN radius, or a NaN coordinate in q, matches nothing. An
// empty database returns no points; an unbuilt one also records no metrics.
func (d *PointDatabase) SearchNearby(q geo.Point, radius float64) []geo.Point {
	if d.tree == nil {
		return nil
	}
	found := d.tree.Search(geo.NewSquare(q, radius))
	queriesTotal.WithLabelValues(d.name).Inc()
	queryResults.WithLabelValues(d.name).Observe(float64(len(found)))
	d.log().Trace().
		Str("index", d.name).
		Stringer("q", q).
		Float64("radius", radius).
		Int("found", len(found)).
		Msg("search nearby")
	return found
}

// Points returns every indexed point ordered by X, then Y.
func (d *PointDatabase) Points() []geo.Point { return d.tree.Points() }

// Len returns the number of indexed points, duplicates included.
func (d *PointDatabase) Len() int { return d.tree.Len() }

// Name returns the name labelling the database's metrics, DefaultName
// unless WithName was given.
func (d *PointDatabase) Name() string {
	if d.name == "" {
		return DefaultName
	}
	return d.name
}

// Stats reports the shape of the range tree.
func (d *PointDatabase) Stats() Stats { return d.tree.Stats() }

// Verify checks the structural invariants of the range tree. A non-nil
// result means the build is defective.
func (d *PointDatabase) Verify() error { return d.tree.Verify() }

func (d *PointDatabase) log() *zerolog.Logger {
	if d.logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return d.logger
}

var _ index.Index = (*PointDatabase)(nil)
