// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering the point SQL
// scalar functions. Other packages share the same driver instance through it.
package engine
