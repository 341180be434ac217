package tree

import "github.com/viant/pointdb/geo"

// buildX builds the X-tree over points sorted by geo.Compare. Each node gets a
// freshly merged Y-tree over its own subtree.
func buildX(sorted []geo.Point) *xnode {
	switch len(sorted) {
	case 0:
		return nil
	case 1:
		return &xnode{value: sorted[0], assoc: &ynode{value: sorted[0]}}
	}
	mid := len(sorted) / 2
	median := sorted[mid]
	left := buildX(sorted[:mid])
	right := buildX(sorted[mid+1:])
	return &xnode{
		value: median,
		left:  left,
		right: right,
		assoc: mergeY(median, ytreeOf(left), ytreeOf(right)),
	}
}

func ytreeOf(n *xnode) *ynode {
	if n == nil {
		return nil
	}
	return n.assoc
}

// searchX appends to dst every point of the X-tree rooted at root that lies
// in sq.
//
// A node on the left boundary path whose X is in range bounds its right
// subtree on both sides in X, so only that subtree's Y-tree needs to be
// queried, with the Y span alone. The right path mirrors this.
func searchX(root *xnode, sq geo.Square, dst []geo.Point) []geo.Point {
	xs, ys := sq.XSpan(), sq.YSpan()
	split := findSplit(root, xs, byX)
	if split == nil {
		return dst
	}
	if split.terminal() {
		if sq.Contains(split.value) {
			dst = append(dst, split.value)
		}
		return dst
	}
	if sq.Contains(split.value) {
		dst = append(dst, split.value)
	}

	v := split.left
	for !v.terminal() {
		if xs.Contains(v.value.X) {
			if sq.Contains(v.value) {
				dst = append(dst, v.value)
			}
			if v.right != nil {
				dst = searchY(v.right.assoc, ys, dst)
			}
			v = v.left
		} else {
			v = v.right
		}
	}
	if v != nil && sq.Contains(v.value) {
		dst = append(dst, v.value)
	}

	v = split.right
	for !v.terminal() {
		if xs.Contains(v.value.X) {
			if sq.Contains(v.value) {
				dst = append(dst, v.value)
			}
			if v.left != nil {
				dst = searchY(v.left.assoc, ys, dst)
			}
			v = v.right
		} else {
			v = v.left
		}
	}
	if v != nil && sq.Contains(v.value) {
		dst = append(dst, v.value)
	}
	return dst
}
