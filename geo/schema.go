package geo

import (
	"database/sql"
	"fmt"
	"strings"
)

// DefaultTable is the table a SQLiteStore uses unless WithTable says otherwise.
const DefaultTable = "points"

const pointsSchema = `
CREATE TABLE IF NOT EXISTS %s (
    x REAL NOT NULL,
    y REAL NOT NULL
);
`

// EnsureSchema creates the points table in the provided database if it does
// not already exist.
func EnsureSchema(db *sql.DB) error {
	return ensureTable(db, DefaultTable)
}

func ensureTable(db *sql.DB, table string) error {
	_, err := db.Exec(fmt.Sprintf(pointsSchema, table))
	return err
}

// ValidTableName reports whether name is a plain or schema-qualified SQL
// identifier (letters, digits, underscores, at most one dot) that can be
// embedded in a statement without quoting.
func ValidTableName(name string) bool {
	parts := strings.Split(name, ".")
	if len(parts) > 2 {
		return false
	}
	for _, part := range parts {
		if part == "" || (part[0] >= '0' && part[0] <= '9') {
			return false
		}
		for _, r := range part {
			switch {
			case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			default:
				return false
			}
		}
	}
	return true
}
