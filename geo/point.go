package geo

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidPoint reports a point that cannot be ordered: a non-numeric
// coordinate, a NaN or an infinity, or a pair with the wrong arity.
var ErrInvalidPoint = errors.New("geo: invalid point")

// Point is an immutable (x, y) pair.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

// Validate returns ErrInvalidPoint when either coordinate is NaN or infinite.
func (p Point) Validate() error {
	if !finite(p.X) || !finite(p.Y) {
		return fmt.Errorf("%w: %v has a non-finite coordinate", ErrInvalidPoint, p)
	}
	return nil
}

// Compare orders points lexicographically: by X, then by Y.
func Compare(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Validate checks every point and reports the first malformed one with its
// position in the slice.
func Validate(points []Point) error {
	for i, p := range points {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("geo: point %d: %w", i, err)
		}
	}
	return nil
}

// FromPairs converts [x, y] pairs into points. Every pair must have exactly two
// finite coordinates.
func FromPairs(pairs [][]float64) ([]Point, error) {
	out := make([]Point, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("geo: pair %d: %w: want 2 coordinates, got %d", i, ErrInvalidPoint, len(pair))
		}
		p := Point{X: pair[0], Y: pair[1]}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("geo: pair %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// FromValues builds a point from loosely typed coordinates as produced by
// database/sql drivers and SQLite virtual table arguments.
func FromValues(x, y interface{}) (Point, error) {
	fx, err := AsCoordinate(x)
	if err != nil {
		return Point{}, err
	}
	fy, err := AsCoordinate(y)
	if err != nil {
		return Point{}, err
	}
	p := Point{X: fx, Y: fy}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

// AsCoordinate converts a driver value into a float64 coordinate.
func AsCoordinate(v interface{}) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int32:
		return float64(val), nil
	case []byte:
		return parseCoordinate(string(val))
	case string:
		return parseCoordinate(val)
	case nil:
		return 0, fmt.Errorf("%w: coordinate is NULL", ErrInvalidPoint)
	default:
		return 0, fmt.Errorf("%w: unsupported coordinate type %T", ErrInvalidPoint, v)
	}
}

func parseCoordinate(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot parse coordinate %q", ErrInvalidPoint, s)
	}
	return f, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
