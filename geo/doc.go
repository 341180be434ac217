// Package geo defines the point model and SQLite-backed point storage used by
// this project. It includes:
//   - Point, ordering and validation of coordinates
//   - Square and Span: inclusive L-infinity query ranges
//   - Chebyshev and Euclidean distance functions
//   - SQLiteStore: durable storage for point sets, plus schema helpers
package geo
