// Package rangetree provides PointDatabase, a static in-memory point index
// backed by a 2-D range tree. It answers "every point within L-infinity
// distance d of q" in O(log² n + m) for m results after an O(n log n) build.
package rangetree
