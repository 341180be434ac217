package tree

import (
	"fmt"
	"slices"

	"github.com/cznic/mathutil"

	"github.com/viant/pointdb/geo"
)

// Stats describes the shape of a built tree.
type Stats struct {
	Points      int // indexed points
	XHeight     int // height of the X-tree, in nodes
	YHeight     int // height of the root's Y-tree, in nodes
	YNodes      int // Y-tree nodes summed over every X-node
	HeightBound int // height of a median-split tree holding Points points
}

// Stats walks the tree and reports its shape.
func (t *Tree) Stats() Stats {
	s := Stats{Points: t.Len(), HeightBound: mathutil.BitLen(t.Len())}
	if t == nil || t.root == nil {
		return s
	}
	s.XHeight = height(t.root)
	s.YHeight = height(t.root.assoc)
	var walk func(n *xnode)
	walk = func(n *xnode) {
		if n == nil {
			return
		}
		s.YNodes += count(n.assoc)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return s
}

// Verify checks the structural invariants of the tree: X-order, Y-order,
// that each Y-tree holds exactly its X-subtree's points, and that every tree
// has the height of a median-split tree of its size. It returns the first
// violation found.
func (t *Tree) Verify() error {
	if t == nil || t.root == nil {
		if t.Len() != 0 {
			return fmt.Errorf("rangetree: empty tree reports %d points", t.Len())
		}
		return nil
	}
	points, err := verifyX(t.root)
	if err != nil {
		return err
	}
	if len(points) != t.size {
		return fmt.Errorf("rangetree: tree holds %d points, size is %d", len(points), t.size)
	}
	return nil
}

// verifyX returns the subtree's points ordered by geo.Compare.
func verifyX(n *xnode) ([]geo.Point, error) {
	if n == nil {
		return nil, nil
	}
	left, err := verifyX(n.left)
	if err != nil {
		return nil, err
	}
	right, err := verifyX(n.right)
	if err != nil {
		return nil, err
	}
	for _, p := range left {
		if geo.Compare(p, n.value) > 0 {
			return nil, fmt.Errorf("rangetree: x-node %v has %v in its left subtree", n.value, p)
		}
	}
	for _, p := range right {
		if geo.Compare(p, n.value) < 0 {
			return nil, fmt.Errorf("rangetree: x-node %v has %v in its right subtree", n.value, p)
		}
	}
	points := make([]geo.Point, 0, len(left)+len(right)+1)
	points = append(points, left...)
	points = append(points, n.value)
	points = append(points, right...)

	if want, got := mathutil.BitLen(len(points)), height(n); got != want {
		return nil, fmt.Errorf("rangetree: x-node %v has height %d, want %d for %d points", n.value, got, want, len(points))
	}
	if err := verifyY(n, points); err != nil {
		return nil, err
	}
	return points, nil
}

func verifyY(n *xnode, subtree []geo.Point) error {
	if n.assoc == nil {
		return fmt.Errorf("rangetree: x-node %v has no y-tree", n.value)
	}
	ys := inorder(n.assoc, nil)
	if !slices.IsSortedFunc(ys, cmpY) {
		return fmt.Errorf("rangetree: y-tree of %v is not ordered by y", n.value)
	}
	if want, got := mathutil.BitLen(len(ys)), height(n.assoc); got != want {
		return fmt.Errorf("rangetree: y-tree of %v has height %d, want %d for %d points", n.value, got, want, len(ys))
	}
	sorted := slices.Clone(ys)
	slices.SortFunc(sorted, geo.Compare)
	if !slices.Equal(sorted, subtree) {
		return fmt.Errorf("rangetree: y-tree of %v holds %d points that differ from its %d subtree points", n.value, len(ys), len(subtree))
	}
	return nil
}

func cmpY(a, b geo.Point) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}
