package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/tarealabs/tarea/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database with the full schema.
// This is the unified test database setup used by all tests in this package.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// A second pooled connection to :memory: would see its own empty
	// database, so pin the pool to one
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// mustCreateUser inserts a user directly and returns it. A fixed hash stands
// in for a real bcrypt digest; repository code never inspects it.
func mustCreateUser(t *testing.T, repo *Repository, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, Password: "$2a$10$testhash"}
	if err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("Failed to create user %q: %v", username, err)
	}
	return user
}

func mustCreateTodo(t *testing.T, repo *Repository, userID int, text string) *models.Todo {
	t.Helper()
	todo := &models.Todo{UserID: userID, Text: text}
	if err := repo.CreateTodo(context.Background(), todo); err != nil {
		t.Fatalf("Failed to create todo %q: %v", text, err)
	}
	return todo
}

func mustCreateCategory(t *testing.T, repo *Repository, userID int, text string) *models.Category {
	t.Helper()
	category := &models.Category{UserID: userID, Text: text}
	if err := repo.CreateCategory(context.Background(), category); err != nil {
		t.Fatalf("Failed to create category %q: %v", text, err)
	}
	return category
}

// countRows is used to pin row-level effects the public API hides
func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
