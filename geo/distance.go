package geo

import (
	"math"

	"github.com/viant/vec/search"
)

// Span is the set of values within Radius of Center on one axis. Membership
// is |v-Center| <= Radius as computed in float64, which is still an interval.
type Span struct {
	Center float64
	Radius float64
}

// Contains reports whether |v-Center| <= Radius.
func (s Span) Contains(v float64) bool { return math.Abs(v-s.Center) <= s.Radius }

// Square is the set of points within Chebyshev distance Radius of Center.
type Square struct {
	Center Point
	Radius float64
}

// NewSquare returns the query square centered at q with radius d.
func NewSquare(q Point, d float64) Square { return Square{Center: q, Radius: d} }

// Empty reports whether no point can match: a negative or NaN radius, or a
// NaN center coordinate.
func (s Square) Empty() bool {
	return !(s.Radius >= 0) || math.IsNaN(s.Center.X) || math.IsNaN(s.Center.Y)
}

// XSpan returns the x-span covered by the square.
func (s Square) XSpan() Span { return Span{Center: s.Center.X, Radius: s.Radius} }

// YSpan returns the y-span covered by the square.
func (s Square) YSpan() Span { return Span{Center: s.Center.Y, Radius: s.Radius} }

// Contains reports whether p lies inside the square, borders included:
// |p.X-c.X| <= r and |p.Y-c.Y| <= r. Every index in this module and the
// pt_within SQL function use this test, so results agree exactly.
func (s Square) Contains(p Point) bool {
	return s.XSpan().Contains(p.X) && s.YSpan().Contains(p.Y)
}

// Chebyshev returns the L-infinity distance between two points.
func Chebyshev(a, b Point) float64 {
	return math.Max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y))
}

// Euclidean returns the L2 distance between two points, computed in float32
// precision by the vec search kernels.
func Euclidean(a, b Point) float32 {
	return search.Float32s{float32(a.X), float32(a.Y)}.EuclideanDistance([]float32{float32(b.X), float32(b.Y)})
}
