// Package sqltest stands up an in-memory SQLite database matching the
// schema internal/dbprim.SQLite's fragments target, so that
// internal/querysql's finalized SQL can be executed end-to-end in tests
// rather than merely compared as a string. It is test-only infrastructure:
// nothing in internal/compiler or internal/querysql imports it.
package sqltest

import (
	"database/sql"
	_ "embed"
	"fmt"
	"regexp"

	sqlite3 "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

const driverName = "pdbquery_sqlite_regexp"

// registered mirrors database/sql's own "driver already registered" panic
// avoidance: sql.Register panics on a duplicate name, so the custom driver
// (which wires REGEXP to Go's regexp package) is registered exactly once.
var registered bool

func registerDriver() {
	if registered {
		return
	}
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("regexp", regexpFunc, true)
		},
	})
	registered = true
}

// regexpFunc implements the function SQLite's REGEXP operator dispatches
// to (mattn/go-sqlite3 supports user-defined SQL functions; there is no
// built-in REGEXP in SQLite itself).
func regexpFunc(pattern, text string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("sqltest: invalid regexp %q: %w", pattern, err)
	}
	return re.MatchString(text), nil
}

// DB is a disposable SQLite database pre-loaded with the resources/facts
// schema, suitable for executing compiler output directly in tests.
type DB struct {
	conn *sql.DB
}

// Open creates a fresh in-memory database and applies schema.sql. Each
// call gets an independent database — callers do not need to clean up
// state between tests, only Close the handle.
func Open() (*DB, error) {
	registerDriver()

	conn, err := sql.Open(driverName, "file::memory:")
	if err != nil {
		return nil, fmt.Errorf("sqltest: open: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqltest: apply schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close releases the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// Exec runs a statement (INSERT fixtures, etc.) with driver-native args.
func (d *DB) Exec(query string, args ...any) error {
	_, err := d.conn.Exec(query, args...)
	return err
}

// Query runs a finalized compiler query and returns the matched rows as
// plain string slices — enough to assert on in a test without binding the
// harness to a particular result struct shape.
func (d *DB) Query(query string, args ...any) ([][]string, error) {
	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqltest: query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			if v == nil {
				row[i] = ""
				continue
			}
			row[i] = fmt.Sprintf("%v", v)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
