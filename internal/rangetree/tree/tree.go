package tree

import (
	"fmt"
	"slices"

	"github.com/viant/pointdb/geo"
)

// Tree is a static 2-D range tree: a balanced BST on (X, Y) whose every node
// owns a balanced BST on Y over its subtree. A Tree is never modified after
// New returns, so any number of goroutines may search it concurrently.
type Tree struct {
	root *xnode
	size int
}

// New builds a tree over a copy of points. The caller's slice is not
// reordered. New fails with geo.ErrInvalidPoint when a coordinate is NaN or
// infinite.
func New(points []geo.Point) (*Tree, error) {
	if err := geo.Validate(points); err != nil {
		return nil, fmt.Errorf("rangetree: %w", err)
	}
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, geo.Compare)
	return &Tree{root: buildX(sorted), size: len(sorted)}, nil
}

// Len returns the number of indexed points, duplicates included.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Search returns every indexed point inside sq, each stored instance once.
// The order is unspecified. An empty square yields no points.
func (t *Tree) Search(sq geo.Square) []geo.Point {
	if t == nil || t.root == nil || sq.Empty() {
		return nil
	}
	return searchX(t.root, sq, nil)
}

// Points returns all indexed points ordered by geo.Compare.
func (t *Tree) Points() []geo.Point {
	if t == nil {
		return nil
	}
	return inorder(t.root, make([]geo.Point, 0, t.size))
}
