package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	var testCases = []struct {
		description string
		a, b        Point
		expect      int
	}{
		{description: "x decides", a: Pt(0, 9), b: Pt(1, 0), expect: -1},
		{description: "y breaks x tie", a: Pt(1, 2), b: Pt(1, 1), expect: 1},
		{description: "equal", a: Pt(3, 3), b: Pt(3, 3), expect: 0},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Compare(testCase.a, testCase.b), testCase.description)
	}
}

func TestPointValidate(t *testing.T) {
	assert.NoError(t, Pt(-1.5, 2e300).Validate())
	assert.ErrorIs(t, Pt(math.NaN(), 0).Validate(), ErrInvalidPoint)
	assert.ErrorIs(t, Pt(0, math.Inf(-1)).Validate(), ErrInvalidPoint)

	err := Validate([]Point{Pt(0, 0), Pt(1, math.Inf(1))})
	require.ErrorIs(t, err, ErrInvalidPoint)
	assert.Contains(t, err.Error(), "point 1")
}

func TestFromPairs(t *testing.T) {
	points, err := FromPairs([][]float64{{0, 0}, {1, 1}, {2, 2}})
	require.NoError(t, err)
	assert.Equal(t, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}, points)

	_, err = FromPairs([][]float64{{0, 0}, {1}})
	assert.ErrorIs(t, err, ErrInvalidPoint)

	_, err = FromPairs([][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, ErrInvalidPoint)

	_, err = FromPairs([][]float64{{math.NaN(), 2}})
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestFromValues(t *testing.T) {
	var testCases = []struct {
		description string
		x, y        interface{}
		expect      Point
		hasError    bool
	}{
		{description: "floats", x: 1.5, y: -2.0, expect: Pt(1.5, -2)},
		{description: "sqlite integers", x: int64(3), y: int64(4), expect: Pt(3, 4)},
		{description: "text", x: "7", y: []byte("8.25"), expect: Pt(7, 8.25)},
		{description: "null", x: nil, y: 1.0, hasError: true},
		{description: "not a number", x: "abc", y: 1.0, hasError: true},
		{description: "bool", x: true, y: 1.0, hasError: true},
		{description: "infinite", x: math.Inf(1), y: 1.0, hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := FromValues(testCase.x, testCase.y)
		if testCase.hasError {
			assert.ErrorIs(t, err, ErrInvalidPoint, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1,-2.5)", Pt(1, -2.5).String())
}
