package category

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/tarealabs/tarea/internal/database"
	"github.com/tarealabs/tarea/internal/testutil"
)

// newTestService builds a service over a fresh in-memory database
func newTestService(t *testing.T) (Service, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewService(database.NewRepository(db)), db
}

func TestCreate(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	testutil.CreateTestUser(t, db, "alice", "alice@mail.com")

	err := svc.Create(context.Background(), "alice", "errands")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	categories, err := svc.ListForUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}

	if len(categories) != 1 {
		t.Fatalf("Expected 1 category, got %d", len(categories))
	}

	if categories[0].Text != "errands" {
		t.Errorf("Expected text 'errands', got '%s'", categories[0].Text)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	testutil.CreateTestUser(t, db, "alice", "alice@mail.com")

	if err := svc.Create(context.Background(), "alice", "errands"); err != nil {
		t.Fatalf("Failed to create first category: %v", err)
	}

	err := svc.Create(context.Background(), "alice", "errands")

	if err != ErrDuplicateCategory {
		t.Errorf("Expected ErrDuplicateCategory, got %v", err)
	}

	categories, err := svc.ListForUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}
	if len(categories) != 1 {
		t.Errorf("Expected 1 category after failed duplicate create, got %d", len(categories))
	}
}

func TestCreate_SameTextDifferentUsers(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	testutil.CreateTestUser(t, db, "alice", "alice@mail.com")
	testutil.CreateTestUser(t, db, "bob", "bob@mail.com")

	if err := svc.Create(context.Background(), "alice", "errands"); err != nil {
		t.Fatalf("Failed to create category for alice: %v", err)
	}

	// Uniqueness is per user, so bob can reuse the text
	if err := svc.Create(context.Background(), "bob", "errands"); err != nil {
		t.Fatalf("Expected no error for second user, got %v", err)
	}
}

func TestCreate_TextTooLong(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	testutil.CreateTestUser(t, db, "alice", "alice@mail.com")

	err := svc.Create(context.Background(), "alice", strings.Repeat("a", 256))

	if err != ErrTextTooLong {
		t.Errorf("Expected ErrTextTooLong, got %v", err)
	}
}

func TestCreate_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	err := svc.Create(context.Background(), "ghost", "errands")

	if err != ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestListForUser_Empty(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	testutil.CreateTestUser(t, db, "alice", "alice@mail.com")

	categories, err := svc.ListForUser(context.Background(), "alice")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(categories) != 0 {
		t.Errorf("Expected 0 categories, got %d", len(categories))
	}
}

func TestListForUser_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.ListForUser(context.Background(), "ghost")

	if err != ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestListForTodo(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	u := testutil.CreateTestUser(t, db, "alice", "alice@mail.com")
	todoID := testutil.CreateTestTodo(t, db, u.ID, "buy milk")
	catID := testutil.CreateTestCategory(t, db, u.ID, "errands")
	testutil.CreateTestCategory(t, db, u.ID, "unrelated")
	testutil.AssignTestCategory(t, db, todoID, catID)

	categories, err := svc.ListForTodo(context.Background(), todoID, "alice")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(categories) != 1 {
		t.Fatalf("Expected 1 category, got %d", len(categories))
	}

	if categories[0].Text != "errands" {
		t.Errorf("Expected text 'errands', got '%s'", categories[0].Text)
	}
}

func TestListForTodo_NotFound(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	testutil.CreateTestUser(t, db, "alice", "alice@mail.com")

	_, err := svc.ListForTodo(context.Background(), 999, "alice")

	if err != ErrTodoNotFound {
		t.Errorf("Expected ErrTodoNotFound, got %v", err)
	}
}

func TestListForTodo_WrongOwner(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	u := testutil.CreateTestUser(t, db, "alice", "alice@mail.com")
	testutil.CreateTestUser(t, db, "bob", "bob@mail.com")
	todoID := testutil.CreateTestTodo(t, db, u.ID, "buy milk")

	_, err := svc.ListForTodo(context.Background(), todoID, "bob")

	if err != ErrOwnershipMismatch {
		t.Errorf("Expected ErrOwnershipMismatch, got %v", err)
	}
}

func TestAssign_CreatesCategory(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	u := testutil.CreateTestUser(t, db, "alice", "alice@mail.com")
	todoID := testutil.CreateTestTodo(t, db, u.ID, "buy milk")

	created, err := svc.Assign(context.Background(), "alice", todoID, "errands")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !created {
		t.Error("Expected the category to be reported as newly created")
	}

	categories, err := svc.ListForTodo(context.Background(), todoID, "alice")
	if err != nil {
		t.Fatalf("Failed to list todo categories: %v", err)
	}
	if len(categories) != 1 || categories[0].Text != "errands" {
		t.Errorf("Expected todo to carry 'errands', got %v", categories)
	}
}

func TestAssign_ExistingCategory(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	u := testutil.CreateTestUser(t, db, "alice", "alice@mail.com")
	todoID := testutil.CreateTestTodo(t, db, u.ID, "buy milk")
	testutil.CreateTestCategory(t, db, u.ID, "errands")

	created, err := svc.Assign(context.Background(), "alice", todoID, "errands")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if created {
		t.Error("Expected existing category to be reused, not recreated")
	}

	// No duplicate category row appeared
	categories, err := svc.ListForUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}
	if len(categories) != 1 {
		t.Errorf("Expected 1 category, got %d", len(categories))
	}
}

func TestAssign_RepeatIsNoop(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	u := testutil.CreateTestUser(t, db, "alice", "alice@mail.com")
	todoID := testutil.CreateTestTodo(t, db, u.ID, "buy milk")

	if _, err := svc.Assign(context.Background(), "alice", todoID, "errands"); err != nil {
		t.Fatalf("Failed first assign: %v", err)
	}
	if _, err := svc.Assign(context.Background(), "alice", todoID, "errands"); err != nil {
		t.Fatalf("Expected repeat assign to succeed, got %v", err)
	}

	var links int
	if err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM todo_categories WHERE todo_id = ?", todoID).Scan(&links); err != nil {
		t.Fatalf("Failed to count associations: %v", err)
	}
	if links != 1 {
		t.Errorf("Expected 1 association after repeat assign, got %d", links)
	}
}

func TestAssign_TodoMissing_CategorySurvives(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	testutil.CreateTestUser(t, db, "alice", "alice@mail.com")

	created, err := svc.Assign(context.Background(), "alice", 999, "errands")

	if err != ErrTodoNotFound {
		t.Errorf("Expected ErrTodoNotFound, got %v", err)
	}

	if !created {
		t.Error("Expected the category creation to be reported despite the missing todo")
	}

	// The category write commits before the todo lookup, so it sticks
	categories, listErr := svc.ListForUser(context.Background(), "alice")
	if listErr != nil {
		t.Fatalf("Failed to list categories: %v", listErr)
	}
	if len(categories) != 1 || categories[0].Text != "errands" {
		t.Errorf("Expected 'errands' to survive the failed assign, got %v", categories)
	}
}

func TestAssign_TodoOwnedByOtherUser(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	testutil.CreateTestUser(t, db, "alice", "alice@mail.com")
	bob := testutil.CreateTestUser(t, db, "bob", "bob@mail.com")
	bobTodo := testutil.CreateTestTodo(t, db, bob.ID, "mow lawn")

	// Someone else's todo is reported the same as a missing one
	_, err := svc.Assign(context.Background(), "alice", bobTodo, "errands")

	if err != ErrTodoNotFound {
		t.Errorf("Expected ErrTodoNotFound, got %v", err)
	}

	var links int
	if err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM todo_categories").Scan(&links); err != nil {
		t.Fatalf("Failed to count associations: %v", err)
	}
	if links != 0 {
		t.Errorf("Expected no associations, got %d", links)
	}
}

func TestAssign_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.Assign(context.Background(), "ghost", 1, "errands")

	if err != ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}
