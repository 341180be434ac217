// Package nearby implements a SQLite virtual table that answers Chebyshev
// neighborhood queries from an in-memory point index.
//
// A table serves either an index published from Go under a name, or an index
// built on first use from a SQL table with x and y columns:
//
//	CREATE VIRTUAL TABLE near USING pointdb(cities);
//	CREATE VIRTUAL TABLE near USING pointdb(source=stations, kind=brute);
//
//	SELECT x, y, distance FROM near WHERE qx = ? AND qy = ? AND radius = ?;
//
// Features:
//   - qx, qy and radius equality constraints pushed down to the index
//   - full listing when no query constraint is given
//   - indexes built from a source table are shared across connections and
//     dropped by pointdb_invalidate(source)
//   - pointdb_size(name) reports the size of a published index
package nearby
