package duckdbtesting

import (
	"database/sql"
	"testing"
	"time"

	"edleval/internal/duckdb"
	"edleval/internal/testutil"
)

const (
	defaultTimeout = 5 * time.Second
)

// Open opens a DuckDB connection with the schema applied and closes it when
// the test ends.
func Open(t testing.TB, dsn string) *sql.DB {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	conn, err := duckdb.Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

// QueryInt returns a single integer value from the database.
func QueryInt(t testing.TB, db *sql.DB, query string, args ...interface{}) int {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	var out int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&out); err != nil {
		t.Fatalf("query int failed: %v", err)
	}
	return out
}
