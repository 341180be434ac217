package tree

import "github.com/viant/pointdb/geo"

// node is a binary search tree node with an associated payload. Y-tree nodes
// carry nothing; X-tree nodes carry the root of the Y-tree over their subtree.
// Every node exclusively owns its children and its payload.
type node[A any] struct {
	value geo.Point
	left  *node[A]
	right *node[A]
	assoc A
}

type (
	ynode = node[struct{}]
	xnode = node[*ynode]
)

// terminal reports whether n is nil or has no children.
func (n *node[A]) terminal() bool {
	return n == nil || (n.left == nil && n.right == nil)
}

// inorder appends the values of the subtree rooted at n to dst in key order.
func inorder[A any](n *node[A], dst []geo.Point) []geo.Point {
	if n == nil {
		return dst
	}
	dst = inorder(n.left, dst)
	dst = append(dst, n.value)
	return inorder(n.right, dst)
}

func count[A any](n *node[A]) int {
	if n == nil {
		return 0
	}
	return count(n.left) + 1 + count(n.right)
}

func height[A any](n *node[A]) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// axis selects the coordinate a tree is ordered by.
type axis func(geo.Point) float64

func byX(p geo.Point) float64 { return p.X }

func byY(p geo.Point) float64 { return p.Y }

// findSplit descends from root until it reaches the first node whose
// coordinate lies inside span, and returns nil when no such node exists on
// the search path.
func findSplit[A any](root *node[A], span geo.Span, key axis) *node[A] {
	n := root
	for n != nil {
		v := key(n.value)
		switch {
		case span.Contains(v):
			return n
		case v > span.Center:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}
