// Package index defines a minimal abstraction for static 2-D point indexes
// that are built once from a point set and queried for L-infinity
// neighborhoods. Implementations in this module include a brute-force
// baseline and the range tree.
package index
