package category

import (
	"context"

	"github.com/tarealabs/tarea/internal/database"
	"github.com/tarealabs/tarea/internal/models"
)

const maxTextLength = 255

// Service defines all category-related business operations
type Service interface {
	// Read operations
	ListForUser(ctx context.Context, username string) ([]*models.Category, error)
	ListForTodo(ctx context.Context, todoID int, username string) ([]*models.Category, error)

	// Write operations
	Create(ctx context.Context, username, text string) error
	Assign(ctx context.Context, username string, todoID int, text string) (created bool, err error)
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new category service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// Create adds a category for the user. Per-user text uniqueness is enforced
// here, not by the schema: an existing category with the same text maps to
// ErrDuplicateCategory.
func (s *service) Create(ctx context.Context, username, text string) error {
	if len(text) > maxTextLength {
		return ErrTextTooLong
	}

	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	existing, err := s.repo.GetCategoryByText(ctx, u.ID, text)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateCategory
	}

	return s.repo.CreateCategory(ctx, &models.Category{UserID: u.ID, Text: text})
}

// ListForUser retrieves all of a user's categories
func (s *service) ListForUser(ctx context.Context, username string) ([]*models.Category, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return s.repo.GetCategoriesForUser(ctx, u.ID)
}

// ListForTodo retrieves the categories associated with a todo. The todo must
// exist and belong to the named user; the two failures are reported apart.
func (s *service) ListForTodo(ctx context.Context, todoID int, username string) ([]*models.Category, error) {
	t, err := s.repo.GetTodoByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTodoNotFound
	}
	if t.Username != username {
		return nil, ErrOwnershipMismatch
	}
	return s.repo.GetCategoriesForTodo(ctx, todoID)
}

// Assign associates a category with one of the user's todos, creating the
// category first when it doesn't exist yet. The creation is its own committed
// step and deliberately survives a failed todo lookup afterwards; created
// reports it so the caller can mention the side effect. A todo that is absent
// or owned by someone else maps to ErrTodoNotFound either way.
func (s *service) Assign(ctx context.Context, username string, todoID int, text string) (bool, error) {
	if len(text) > maxTextLength {
		return false, ErrTextTooLong
	}

	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, ErrUserNotFound
	}

	created := false
	cat, err := s.repo.GetCategoryByText(ctx, u.ID, text)
	if err != nil {
		return false, err
	}
	if cat == nil {
		cat = &models.Category{UserID: u.ID, Text: text}
		if err := s.repo.CreateCategory(ctx, cat); err != nil {
			return false, err
		}
		created = true
	}

	t, err := s.repo.GetTodoByID(ctx, todoID)
	if err != nil {
		return created, err
	}
	if t == nil || t.UserID != u.ID {
		return created, ErrTodoNotFound
	}

	if err := s.repo.AssignCategoryToTodo(ctx, t.ID, cat.ID); err != nil {
		return created, err
	}
	return created, nil
}
