package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/tarealabs/tarea/internal/database"
	"github.com/tarealabs/tarea/internal/models"
	_ "modernc.org/sqlite"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// TestAppKey is the context key commands check for an injected test app
const TestAppKey ContextKey = "testApp"

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
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

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// CreateTestUser inserts a user directly and returns it with its ID set.
// The password column gets a fixed placeholder hash.
func CreateTestUser(t *testing.T, db *sql.DB, username, email string) *models.User {
	t.Helper()
	result, err := db.Exec(
		`INSERT INTO users (username, email, password) VALUES (?, ?, ?)`,
		username, email, "$2a$10$testhash",
	)
	if err != nil {
		t.Fatalf("Failed to create test user %q: %v", username, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test user id: %v", err)
	}
	return &models.User{ID: int(id), Username: username, Email: email, Password: "$2a$10$testhash"}
}

// CreateTestTodo inserts a todo directly and returns its ID
func CreateTestTodo(t *testing.T, db *sql.DB, userID int, text string) int {
	t.Helper()
	result, err := db.Exec(
		`INSERT INTO todos (user_id, text, done) VALUES (?, ?, 0)`,
		userID, text,
	)
	if err != nil {
		t.Fatalf("Failed to create test todo %q: %v", text, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test todo id: %v", err)
	}
	return int(id)
}

// CreateTestCategory inserts a category directly and returns its ID
func CreateTestCategory(t *testing.T, db *sql.DB, userID int, text string) int {
	t.Helper()
	result, err := db.Exec(
		`INSERT INTO categories (user_id, text) VALUES (?, ?)`,
		userID, text,
	)
	if err != nil {
		t.Fatalf("Failed to create test category %q: %v", text, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test category id: %v", err)
	}
	return int(id)
}

// AssignTestCategory writes an association row directly
func AssignTestCategory(t *testing.T, db *sql.DB, todoID, categoryID int) {
	t.Helper()
	if _, err := db.Exec(
		`INSERT OR IGNORE INTO todo_categories (todo_id, category_id) VALUES (?, ?)`,
		todoID, categoryID,
	); err != nil {
		t.Fatalf("Failed to assign test category: %v", err)
	}
}
