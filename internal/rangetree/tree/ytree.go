package tree

import (
	"slices"

	"github.com/viant/pointdb/geo"
)

// buildY builds a balanced Y-tree from points sorted by Y. The middle element
// becomes the root, so the in-order traversal reproduces sorted exactly.
func buildY(sorted []geo.Point) *ynode {
	if len(sorted) == 0 {
		return nil
	}
	mid := len(sorted) / 2
	return &ynode{
		value: sorted[mid],
		left:  buildY(sorted[:mid]),
		right: buildY(sorted[mid+1:]),
	}
}

// mergeY returns a new balanced Y-tree holding every point of t1 and t2 plus
// median. Neither input tree is reused.
//
// On equal Y the merge takes from t1 first, and median is placed after every
// point whose Y equals its own.
func mergeY(median geo.Point, t1, t2 *ynode) *ynode {
	a := inorder(t1, nil)
	b := inorder(t2, nil)
	merged := make([]geo.Point, 0, len(a)+len(b)+1)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Y <= b[j].Y {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)

	at := len(merged)
	for k, p := range merged {
		if p.Y > median.Y {
			at = k
			break
		}
	}
	merged = slices.Insert(merged, at, median)
	return buildY(merged)
}

// searchY appends to dst every point of the Y-tree rooted at root whose Y lies
// in span.
//
// Below the split node the two boundary paths are walked. On the left path an
// in-range node proves its whole right subtree in range, and that subtree is
// collected by running the same search on it; the right path mirrors this.
func searchY(root *ynode, span geo.Span, dst []geo.Point) []geo.Point {
	split := findSplit(root, span, byY)
	if split == nil {
		return dst
	}
	if span.Contains(split.value.Y) {
		dst = append(dst, split.value)
	}

	v := split.left
	for !v.terminal() {
		if span.Contains(v.value.Y) {
			dst = append(dst, v.value)
			dst = searchY(v.right, span, dst)
			v = v.left
		} else {
			v = v.right
		}
	}
	if v != nil && span.Contains(v.value.Y) {
		dst = append(dst, v.value)
	}

	v = split.right
	for !v.terminal() {
		if span.Contains(v.value.Y) {
			dst = append(dst, v.value)
			dst = searchY(v.left, span, dst)
			v = v.right
		} else {
			v = v.left
		}
	}
	if v != nil && span.Contains(v.value.Y) {
		dst = append(dst, v.value)
	}
	return dst
}
