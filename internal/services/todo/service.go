package todo

import (
	"context"

	"github.com/tarealabs/tarea/internal/database"
	"github.com/tarealabs/tarea/internal/models"
)

const maxTextLength = 255

// Service defines all todo-related business operations
type Service interface {
	// Read operations
	List(ctx context.Context) ([]*models.TodoWithOwner, error)

	// Write operations
	Add(ctx context.Context, username, text string) (*models.Todo, error)
	Toggle(ctx context.Context, todoID int, username string) (bool, error)
	Delete(ctx context.Context, todoID int) error
	CompleteAll(ctx context.Context, username string) error
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new todo service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// Add creates a todo owned by the named user, not done
func (s *service) Add(ctx context.Context, username, text string) (*models.Todo, error) {
	if len(text) > maxTextLength {
		return nil, ErrTextTooLong
	}

	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	todo := &models.Todo{UserID: u.ID, Text: text}
	if err := s.repo.CreateTodo(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Toggle flips the done flag of the todo and returns the new state.
// The todo must exist and belong to the named user.
func (s *service) Toggle(ctx context.Context, todoID int, username string) (bool, error) {
	t, err := s.repo.GetTodoByID(ctx, todoID)
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, ErrTodoNotFound
	}
	if t.Username != username {
		return false, ErrOwnershipMismatch
	}

	done := !t.Done
	if err := s.repo.SetTodoDone(ctx, todoID, done); err != nil {
		return false, err
	}
	return done, nil
}

// List retrieves every todo with its owner's username
func (s *service) List(ctx context.Context) ([]*models.TodoWithOwner, error) {
	return s.repo.GetAllTodos(ctx)
}

// Delete removes a todo by ID regardless of owner
func (s *service) Delete(ctx context.Context, todoID int) error {
	t, err := s.repo.GetTodoByID(ctx, todoID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTodoNotFound
	}
	return s.repo.DeleteTodo(ctx, todoID)
}

// CompleteAll marks every todo owned by the user as done, as one batch
func (s *service) CompleteAll(ctx context.Context, username string) error {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	return s.repo.CompleteAllForUser(ctx, u.ID)
}
