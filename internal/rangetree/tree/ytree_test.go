package tree

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/cznic/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/pointdb/geo"
)

func TestBuildY(t *testing.T) {
	for n := 0; n <= 33; n++ {
		sorted := make([]geo.Point, n)
		for i := range sorted {
			sorted[i] = geo.Pt(float64(n-i), float64(i))
		}
		root := buildY(sorted)
		assert.Equal(t, n, count(root))
		assert.Equal(t, mathutil.BitLen(n), height(root), "height for %d points", n)
		if n > 0 {
			assert.Equal(t, sorted, inorder(root, nil), "in-order for %d points", n)
			assert.Equal(t, sorted[n/2], root.value)
		}
	}
}

func TestMergeY_TieBreak(t *testing.T) {
	t1 := buildY([]geo.Point{geo.Pt(0, 1), geo.Pt(1, 2)})
	t2 := buildY([]geo.Point{geo.Pt(5, 1), geo.Pt(6, 2)})

	merged := mergeY(geo.Pt(3, 1), t1, t2)
	expect := []geo.Point{geo.Pt(0, 1), geo.Pt(5, 1), geo.Pt(3, 1), geo.Pt(1, 2), geo.Pt(6, 2)}
	assert.Equal(t, expect, inorder(merged, nil))
	assert.Equal(t, mathutil.BitLen(len(expect)), height(merged))
}

func TestMergeY_MedianPlacement(t *testing.T) {
	var testCases = []struct {
		description string
		median      geo.Point
		t1          []geo.Point
		t2          []geo.Point
		expect      []geo.Point
	}{
		{
			description: "no children",
			median:      geo.Pt(1, 1),
			expect:      []geo.Point{geo.Pt(1, 1)},
		},
		{
			description: "only left tree, median largest",
			median:      geo.Pt(2, 9),
			t1:          []geo.Point{geo.Pt(0, 1), geo.Pt(1, 5)},
			expect:      []geo.Point{geo.Pt(0, 1), geo.Pt(1, 5), geo.Pt(2, 9)},
		},
		{
			description: "only right tree, median smallest",
			median:      geo.Pt(0, -3),
			t2:          []geo.Point{geo.Pt(1, 0), geo.Pt(2, 4)},
			expect:      []geo.Point{geo.Pt(0, -3), geo.Pt(1, 0), geo.Pt(2, 4)},
		},
		{
			description: "median after equal y",
			median:      geo.Pt(5, 2),
			t1:          []geo.Point{geo.Pt(0, 2), geo.Pt(1, 3)},
			t2:          []geo.Point{geo.Pt(6, 2)},
			expect:      []geo.Point{geo.Pt(0, 2), geo.Pt(6, 2), geo.Pt(5, 2), geo.Pt(1, 3)},
		},
	}
	for _, testCase := range testCases {
		merged := mergeY(testCase.median, buildY(testCase.t1), buildY(testCase.t2))
		assert.Equal(t, testCase.expect, inorder(merged, nil), testCase.description)
	}
}

func TestMergeY_DoesNotAlias(t *testing.T) {
	t1 := buildY([]geo.Point{geo.Pt(0, 0), geo.Pt(1, 1), geo.Pt(2, 2)})
	t2 := buildY([]geo.Point{geo.Pt(4, 0.5)})
	merged := mergeY(geo.Pt(3, 3), t1, t2)

	owned := map[*ynode]bool{}
	var mark func(n *ynode)
	mark = func(n *ynode) {
		if n == nil {
			return
		}
		owned[n] = true
		mark(n.left)
		mark(n.right)
	}
	mark(t1)
	mark(t2)

	var check func(n *ynode)
	check = func(n *ynode) {
		if n == nil {
			return
		}
		assert.False(t, owned[n], "merged tree reuses node %v", n.value)
		check(n.left)
		check(n.right)
	}
	check(merged)
	assert.Equal(t, []geo.Point{geo.Pt(0, 0), geo.Pt(1, 1), geo.Pt(2, 2)}, inorder(t1, nil))
}

func TestFindSplit(t *testing.T) {
	sorted := []geo.Point{geo.Pt(0, 1), geo.Pt(0, 3), geo.Pt(0, 5), geo.Pt(0, 7), geo.Pt(0, 9), geo.Pt(0, 11), geo.Pt(0, 13)}
	root := buildY(sorted)

	split := findSplit(root, geo.Span{Center: 4, Radius: 2}, byY)
	require.NotNil(t, split)
	assert.Equal(t, 3.0, split.value.Y)

	split = findSplit(root, geo.Span{Center: 7, Radius: 1}, byY)
	require.NotNil(t, split)
	assert.Equal(t, 7.0, split.value.Y)

	assert.Nil(t, findSplit(root, geo.Span{Center: 8, Radius: 0.5}, byY))
	assert.Nil(t, findSplit(root, geo.Span{Center: 25, Radius: 5}, byY))
	assert.Nil(t, findSplit[struct{}](nil, geo.Span{Center: 0.5, Radius: 0.5}, byY))
}

func TestSearchY_MatchesFilter(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		n := rng.Intn(40)
		sorted := make([]geo.Point, n)
		for i := range sorted {
			sorted[i] = geo.Pt(float64(i), float64(rng.Intn(20)))
		}
		slices.SortStableFunc(sorted, cmpY)
		root := buildY(sorted)

		span := geo.Span{Center: float64(rng.Intn(48)-4) / 2, Radius: float64(rng.Intn(8)) / 2}

		var expect []geo.Point
		for _, p := range sorted {
			if span.Contains(p.Y) {
				expect = append(expect, p)
			}
		}
		actual := searchY(root, span, nil)
		assert.ElementsMatch(t, expect, actual, "round %d span %v", round, span)
	}
}
