package nearby

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"

	sqlite "modernc.org/sqlite"
	"modernc.org/sqlite/vtab"

	"github.com/viant/pointdb/geo"
	"github.com/viant/pointdb/index"
	"github.com/viant/pointdb/index/bruteforce"
	"github.com/viant/pointdb/index/rangetree"
)

// ModuleName is the name used in CREATE VIRTUAL TABLE ... USING.
const ModuleName = "pointdb"

// Column positions of the declared schema.
const (
	colX = iota
	colY
	colDistance
	colQX
	colQY
	colRadius
)

const (
	idxScan = iota
	idxNearby
)

// Planner costs. A scan under query constraints yields no rows, since the
// hidden query columns read NULL, so it must never win.
const (
	nearbyCost  = 10
	scanCost    = 1e6
	partialCost = 1e12
)

// Module implements vtab.Module for the pointdb virtual table.
type Module struct {
	db *sql.DB
}

// Table represents a single pointdb virtual table instance.
type Table struct {
	db        *sql.DB
	dbName    string
	tableName string
	opts      tableOptions

	dbPathOnce sync.Once
	dbPath     string
}

type row struct {
	point    geo.Point
	distance interface{}
}

// Cursor scans the points selected by Filter.
type Cursor struct {
	table *Table
	rows  []row
	pos   int
	q     []interface{} // qx, qy, radius for the hidden columns
}

var registerFuncsOnce sync.Once

// Register registers the pointdb module with the provided *sql.DB, together
// with the pointdb_size(name) and pointdb_invalidate(source) SQL functions.
func Register(db *sql.DB) error {
	var err error
	registerFuncsOnce.Do(func() {
		if err = sqlite.RegisterDeterministicScalarFunction("pointdb_size", 1, sizeFunc); err != nil {
			return
		}
		err = sqlite.RegisterDeterministicScalarFunction("pointdb_invalidate", 1, invalidateFunc)
	})
	if err != nil {
		return err
	}
	if err := vtab.RegisterModule(db, ModuleName, &Module{db: db}); err != nil {
		if !strings.Contains(err.Error(), "already registered") {
			return err
		}
	}
	return nil
}

// Create declares a new pointdb table.
func (m *Module) Create(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.connect(ctx, args, "CREATE")
}

// Connect attaches to an existing pointdb table.
func (m *Module) Connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.connect(ctx, args, "CONNECT")
}

func (m *Module) connect(ctx vtab.Context, args []string, op string) (vtab.Table, error) {
	if len(args) < 4 {
		return nil, fmt.Errorf("nearby: %s expects an index name or source, got %d args", op, len(args))
	}
	opts, err := parseTableOptions(args[3:])
	if err != nil {
		return nil, err
	}
	if err := ctx.EnableConstraintSupport(); err != nil {
		return nil, fmt.Errorf("nearby: EnableConstraintSupport failed: %w", err)
	}
	if err := ctx.Declare(fmt.Sprintf("CREATE TABLE %s(x REAL, y REAL, distance REAL HIDDEN, qx REAL HIDDEN, qy REAL HIDDEN, radius REAL HIDDEN)", args[2])); err != nil {
		return nil, err
	}
	return &Table{db: m.db, dbName: args[1], tableName: args[2], opts: opts}, nil
}

// BestIndex pushes down equality on qx, qy and radius. Without all three
// the table is scanned; that plan is priced out whenever the statement
// constrains a query column, so in joins SQLite evaluates the table after
// the rows that feed qx, qy and radius.
func (t *Table) BestIndex(info *vtab.IndexInfo) error {
	var query [3]*vtab.Constraint
	referenced := false
	for i := range info.Constraints {
		c := &info.Constraints[i]
		if c.Column < colQX || c.Column > colRadius {
			continue
		}
		referenced = true
		if !c.Usable || c.Op != vtab.OpEQ {
			continue
		}
		if query[c.Column-colQX] == nil {
			query[c.Column-colQX] = c
		}
	}
	if query[0] != nil && query[1] != nil && query[2] != nil {
		for i, c := range query {
			c.ArgIndex = i
			c.Omit = true
		}
		info.IdxNum = idxNearby
		info.EstimatedCost = nearbyCost
		return nil
	}
	info.IdxNum = idxScan
	info.EstimatedCost = scanCost
	if referenced {
		info.EstimatedCost = partialCost
	}
	return nil
}

// Open allocates a new cursor.
func (t *Table) Open() (vtab.Cursor, error) { return &Cursor{table: t}, nil }

// Disconnect cleans up per-connection resources.
func (t *Table) Disconnect() error { return nil }

// Destroy leaves published indexes and source tables untouched.
func (t *Table) Destroy() error { return nil }

// resolve returns the index the table serves.
func (t *Table) resolve(ctx context.Context) (index.Index, error) {
	if t.opts.source == "" {
		idx, ok := Lookup(t.opts.name)
		if !ok {
			return nil, fmt.Errorf("nearby: no index published as %q", t.opts.name)
		}
		return idx, nil
	}
	key := cacheKey(t.cachedDbPath(ctx), t.opts.source, t.opts.kind)
	return getCacheEntry(key).load(func() (index.Index, error) {
		return t.build(ctx)
	})
}

// build loads the source table and indexes it.
func (t *Table) build(ctx context.Context) (index.Index, error) {
	store, err := geo.NewSQLiteStore(t.db, geo.WithTable(t.opts.source), geo.WithoutSchema())
	if err != nil {
		return nil, err
	}
	if t.opts.kind == kindBrute {
		points, err := store.LoadPoints(ctx)
		if err != nil {
			return nil, fmt.Errorf("nearby: load %s: %w", t.opts.source, err)
		}
		idx, err := bruteforce.New(points)
		if err != nil {
			return nil, err
		}
		return idx, nil
	}
	idx, err := rangetree.Load(ctx, store, rangetree.WithName(t.opts.source))
	if err != nil {
		return nil, fmt.Errorf("nearby: %w", err)
	}
	return idx, nil
}

func (t *Table) cachedDbPath(ctx context.Context) string {
	t.dbPathOnce.Do(func() {
		path, err := resolveDbPath(ctx, t.db, t.dbName)
		if err != nil {
			path = t.dbName
		}
		t.dbPath = path
	})
	return t.dbPath
}

// resolveDbPath returns the file behind dbName so tables on different
// connections to one file share cached indexes.
func resolveDbPath(ctx context.Context, db *sql.DB, dbName string) (string, error) {
	if dbName == "" {
		dbName = "main"
	}
	rows, err := db.QueryContext(ctx, `SELECT name, file FROM pragma_database_list`)
	if err != nil {
		return "", err
	}
	defer rows.Close()
	for rows.Next() {
		var name, file string
		if err := rows.Scan(&name, &file); err != nil {
			return "", err
		}
		if name == dbName {
			if file == "" {
				return name, nil
			}
			return file, nil
		}
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	return dbName, nil
}

// Filter computes the result set based on idxNum/vals.
func (c *Cursor) Filter(idxNum int, idxStr string, vals []vtab.Value) error {
	_ = idxStr
	c.rows, c.pos, c.q = nil, 0, nil
	idx, err := c.table.resolve(context.Background())
	if err != nil {
		return err
	}
	switch idxNum {
	case idxScan:
		points := idx.Points()
		c.rows = make([]row, len(points))
		for i, p := range points {
			c.rows[i] = row{point: p}
		}
		return nil
	case idxNearby:
		if len(vals) < 3 {
			return fmt.Errorf("nearby: qx, qy and radius arguments are required")
		}
		c.q = []interface{}{vals[0], vals[1], vals[2]}
		if vals[0] == nil || vals[1] == nil || vals[2] == nil {
			return nil
		}
		q, err := geo.FromValues(vals[0], vals[1])
		if err != nil {
			return fmt.Errorf("nearby: query point: %w", err)
		}
		radius, err := geo.AsCoordinate(vals[2])
		if err != nil {
			return fmt.Errorf("nearby: radius: %w", err)
		}
		found := idx.SearchNearby(q, radius)
		c.rows = make([]row, len(found))
		for i, p := range found {
			c.rows[i] = row{point: p, distance: geo.Chebyshev(p, q)}
		}
		return nil
	default:
		return fmt.Errorf("nearby: unsupported query plan %d", idxNum)
	}
}

// Next advances the cursor.
func (c *Cursor) Next() error {
	if c.pos < len(c.rows) {
		c.pos++
	}
	return nil
}

// Eof reports end-of-rows.
func (c *Cursor) Eof() bool { return c.pos >= len(c.rows) }

// Column returns the value of a column in the current row.
func (c *Cursor) Column(col int) (vtab.Value, error) {
	if c.pos < 0 || c.pos >= len(c.rows) {
		return nil, fmt.Errorf("nearby: Column out of range (pos=%d,len=%d)", c.pos, len(c.rows))
	}
	r := c.rows[c.pos]
	switch col {
	case colX:
		return r.point.X, nil
	case colY:
		return r.point.Y, nil
	case colDistance:
		return r.distance, nil
	case colQX, colQY, colRadius:
		if c.q == nil {
			return nil, nil
		}
		return c.q[col-colQX], nil
	}
	return nil, fmt.Errorf("nearby: unsupported column %d", col)
}

// Rowid returns the 1-based position of the current row in the result set.
func (c *Cursor) Rowid() (int64, error) {
	if c.pos < 0 || c.pos >= len(c.rows) {
		return 0, fmt.Errorf("nearby: Rowid out of range (pos=%d,len=%d)", c.pos, len(c.rows))
	}
	return int64(c.pos + 1), nil
}

// Close releases resources.
func (c *Cursor) Close() error { c.rows = nil; c.pos = 0; return nil }

// sizeFunc implements SQL scalar pointdb_size(name TEXT) -> INT, NULL when no
// index is published under name.
func sizeFunc(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("pointdb_size: expected 1 argument, got %d", len(args))
	}
	name, ok := asString(args[0])
	if !ok {
		return nil, nil
	}
	idx, ok := Lookup(name)
	if !ok {
		return nil, nil
	}
	return int64(idx.Len()), nil
}

// invalidateFunc implements SQL scalar pointdb_invalidate(source TEXT) -> INT.
func invalidateFunc(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return int64(0), nil
	}
	source, ok := asString(args[0])
	if !ok {
		return int64(0), nil
	}
	return int64(InvalidateCache(source)), nil
}

func asString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []byte:
		return string(val), true
	}
	return "", false
}
