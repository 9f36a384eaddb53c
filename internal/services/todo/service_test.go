package todo

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

func TestAdd(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	testutil.CreateTestUser(t, db, "alice", "alice@mail.com")

	created, err := svc.Add(context.Background(), "alice", "buy milk")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if created.ID == 0 {
		t.Error("Expected todo ID to be set")
	}

	if created.Text != "buy milk" {
		t.Errorf("Expected text 'buy milk', got '%s'", created.Text)
	}

	if created.Done {
		t.Error("Expected new todo to start incomplete")
	}
}

func TestAdd_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), "ghost", "buy milk")

	if err != ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestAdd_TextTooLong(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	testutil.CreateTestUser(t, db, "alice", "alice@mail.com")

	_, err := svc.Add(context.Background(), "alice", strings.Repeat("a", 256))

	if err != ErrTextTooLong {
		t.Errorf("Expected ErrTextTooLong, got %v", err)
	}
}

func TestAdd_TextAtLimit(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	testutil.CreateTestUser(t, db, "alice", "alice@mail.com")

	// 255 characters is still allowed
	created, err := svc.Add(context.Background(), "alice", strings.Repeat("a", 255))

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(created.Text) != 255 {
		t.Errorf("Expected 255-character text to round-trip, got %d characters", len(created.Text))
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	u := testutil.CreateTestUser(t, db, "alice", "alice@mail.com")
	todoID := testutil.CreateTestTodo(t, db, u.ID, "buy milk")

	done, err := svc.Toggle(context.Background(), todoID, "alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !done {
		t.Error("Expected first toggle to mark the todo done")
	}

	// Toggling again restores the original state
	done, err = svc.Toggle(context.Background(), todoID, "alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if done {
		t.Error("Expected second toggle to mark the todo incomplete")
	}
}

func TestToggle_NotFound(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	testutil.CreateTestUser(t, db, "alice", "alice@mail.com")

	_, err := svc.Toggle(context.Background(), 999, "alice")

	if err != ErrTodoNotFound {
		t.Errorf("Expected ErrTodoNotFound, got %v", err)
	}
}

func TestToggle_WrongOwner(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	u := testutil.CreateTestUser(t, db, "alice", "alice@mail.com")
	testutil.CreateTestUser(t, db, "bob", "bob@mail.com")
	todoID := testutil.CreateTestTodo(t, db, u.ID, "buy milk")

	_, err := svc.Toggle(context.Background(), todoID, "bob")

	if err != ErrOwnershipMismatch {
		t.Errorf("Expected ErrOwnershipMismatch, got %v", err)
	}

	// The refused toggle must not have flipped the flag
	var done bool
	if err := db.QueryRowContext(context.Background(), "SELECT done FROM todos WHERE id = ?", todoID).Scan(&done); err != nil {
		t.Fatalf("Failed to read todo: %v", err)
	}
	if done {
		t.Error("Expected todo to stay incomplete after refused toggle")
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	alice := testutil.CreateTestUser(t, db, "alice", "alice@mail.com")
	bob := testutil.CreateTestUser(t, db, "bob", "bob@mail.com")
	testutil.CreateTestTodo(t, db, alice.ID, "buy milk")
	testutil.CreateTestTodo(t, db, bob.ID, "walk dog")

	todos, err := svc.List(context.Background())

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(todos) != 2 {
		t.Fatalf("Expected 2 todos, got %d", len(todos))
	}

	if todos[0].Username != "alice" || todos[1].Username != "bob" {
		t.Errorf("Expected owners 'alice'/'bob', got '%s'/'%s'",
			todos[0].Username, todos[1].Username)
	}
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	todos, err := svc.List(context.Background())

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(todos) != 0 {
		t.Errorf("Expected 0 todos, got %d", len(todos))
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	u := testutil.CreateTestUser(t, db, "alice", "alice@mail.com")
	todoID := testutil.CreateTestTodo(t, db, u.ID, "buy milk")

	err := svc.Delete(context.Background(), todoID)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Deleting again reports the todo as gone
	err = svc.Delete(context.Background(), todoID)
	if err != ErrTodoNotFound {
		t.Errorf("Expected ErrTodoNotFound on second delete, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	err := svc.Delete(context.Background(), 999)

	if err != ErrTodoNotFound {
		t.Errorf("Expected ErrTodoNotFound, got %v", err)
	}
}

func TestCompleteAll(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)

	alice := testutil.CreateTestUser(t, db, "alice", "alice@mail.com")
	bob := testutil.CreateTestUser(t, db, "bob", "bob@mail.com")
	testutil.CreateTestTodo(t, db, alice.ID, "buy milk")
	testutil.CreateTestTodo(t, db, alice.ID, "walk dog")
	bobTodo := testutil.CreateTestTodo(t, db, bob.ID, "mow lawn")

	err := svc.CompleteAll(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var open int
	if err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM todos WHERE user_id = ? AND done = 0", alice.ID).Scan(&open); err != nil {
		t.Fatalf("Failed to count todos: %v", err)
	}
	if open != 0 {
		t.Errorf("Expected all of alice's todos done, %d still open", open)
	}

	// Bob's todo is untouched
	var done bool
	if err := db.QueryRowContext(context.Background(), "SELECT done FROM todos WHERE id = ?", bobTodo).Scan(&done); err != nil {
		t.Fatalf("Failed to read todo: %v", err)
	}
	if done {
		t.Error("Expected bob's todo to stay incomplete")
	}

	// Running again is a no-op
	if err := svc.CompleteAll(context.Background(), "alice"); err != nil {
		t.Fatalf("Expected repeat run to succeed, got %v", err)
	}
}

func TestCompleteAll_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	err := svc.CompleteAll(context.Background(), "ghost")

	if err != ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}
