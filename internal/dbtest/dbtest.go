// Package dbtest provides an in-memory SQLite database with the application
// schema for repository and service tests.
package dbtest

import (
	"database/sql"
	_ "embed"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed sql/schema.sql
var schema string

// New opens a fresh in-memory database with foreign keys enforced. The pool
// is pinned to one connection, since every :memory: connection is its own
// database.
func New(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	return db
}

// SeedEmployee inserts a minimal employee row.
func SeedEmployee(t *testing.T, db *sql.DB, id, name, email, role string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO employees (employee_id, name, email, role, status, password) VALUES ($1, $2, $3, $4, 'Active', 'secret')`,
		id, name, email, role,
	)
	if err != nil {
		t.Fatalf("failed to seed employee %s: %v", id, err)
	}
}

// Count runs a COUNT(*) style query and returns the result.
func Count(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return n
}
