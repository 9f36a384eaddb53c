package cli

import (
	"database/sql"
	"testing"

	"github.com/tarealabs/tarea/internal/app"
	"github.com/tarealabs/tarea/internal/models"
	"github.com/tarealabs/tarea/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db)

	return db, appInstance
}

// CreateTestUser wraps testutil.CreateTestUser for CLI tests
func CreateTestUser(t *testing.T, db *sql.DB, username, email string) *models.User {
	t.Helper()
	return testutil.CreateTestUser(t, db, username, email)
}

// CreateTestTodo wraps testutil.CreateTestTodo for CLI tests
// Creates a test todo and returns its ID
func CreateTestTodo(t *testing.T, db *sql.DB, userID int, text string) int {
	t.Helper()
	return testutil.CreateTestTodo(t, db, userID, text)
}

// CreateTestCategory wraps testutil.CreateTestCategory for CLI tests
// Creates a test category and returns its ID
func CreateTestCategory(t *testing.T, db *sql.DB, userID int, text string) int {
	t.Helper()
	return testutil.CreateTestCategory(t, db, userID, text)
}

// AssignTestCategory wraps testutil.AssignTestCategory for CLI tests
func AssignTestCategory(t *testing.T, db *sql.DB, todoID, categoryID int) {
	t.Helper()
	testutil.AssignTestCategory(t, db, todoID, categoryID)
}
