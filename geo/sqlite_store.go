package geo

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteStore is a Store backed by a table with x and y columns in a SQLite
// database.
type SQLiteStore struct {
	db       *sql.DB
	table    string
	noSchema bool
}

// StoreOption configures a SQLiteStore.
type StoreOption func(*SQLiteStore)

// WithTable stores points in table instead of DefaultTable.
func WithTable(table string) StoreOption {
	return func(s *SQLiteStore) { s.table = table }
}

// WithoutSchema uses an existing table as is; NewSQLiteStore does not create
// it. Any table with x and y columns can then be read.
func WithoutSchema() StoreOption {
	return func(s *SQLiteStore) { s.noSchema = true }
}

// NewSQLiteStore creates a new SQLite-backed Store. Unless WithoutSchema is
// given it ensures the points table exists in the provided database.
func NewSQLiteStore(db *sql.DB, opts ...StoreOption) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("geo: db is nil")
	}
	s := &SQLiteStore{db: db, table: DefaultTable}
	for _, opt := range opts {
		opt(s)
	}
	if !ValidTableName(s.table) {
		return nil, fmt.Errorf("geo: invalid table name %q", s.table)
	}
	if !s.noSchema {
		if err := ensureTable(db, s.table); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Table returns the name of the backing table.
func (s *SQLiteStore) Table() string { return s.table }

// AddPoints validates all points up front, then inserts them in a single
// transaction.
func (s *SQLiteStore) AddPoints(ctx context.Context, points []Point) error {
	if len(points) == 0 {
		return nil
	}
	if err := Validate(points); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s(x, y) VALUES(?, ?)`, s.table))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, p.X, p.Y); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadPoints reads every point in rowid order. Rows holding values that are
// not finite numbers are reported as ErrInvalidPoint.
func (s *SQLiteStore) LoadPoints(ctx context.Context) ([]Point, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT rowid, x, y FROM %s ORDER BY rowid`, s.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Point
	for rows.Next() {
		var rowid int64
		var x, y interface{}
		if err := rows.Scan(&rowid, &x, &y); err != nil {
			return nil, err
		}
		p, err := FromValues(x, y)
		if err != nil {
			return nil, fmt.Errorf("geo: %s row %d: %w", s.table, rowid, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Clear deletes every row from the backing table.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, s.table))
	return err
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
