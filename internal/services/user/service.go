package user

import (
	"context"
	"fmt"

	"github.com/tarealabs/tarea/internal/database"
	"github.com/tarealabs/tarea/internal/models"
)

// Service defines all user-related business operations
type Service interface {
	// Read operations
	Get(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Page(ctx context.Context, limit, offset int) ([]*models.User, error)
	Search(ctx context.Context, partialUsername, partialEmail string) (*models.User, error)

	// Write operations
	Create(ctx context.Context, req CreateUserRequest) (*models.User, error)
	ChangeEmail(ctx context.Context, username, newEmail string) error
	Delete(ctx context.Context, username string) error
}

// CreateUserRequest encapsulates all data needed to create a user
type CreateUserRequest struct {
	Username string
	Email    string
	Password string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new user service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// Create hashes the password and inserts the user. A unique-constraint
// failure on username or email rolls the insert back and comes out as
// ErrDuplicateUser.
func (s *service) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	u, err := models.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to build user: %w", err)
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

// Get retrieves a user by exact username
func (s *service) Get(ctx context.Context, username string) (*models.User, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// List retrieves every user in insertion order
func (s *service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.GetAllUsers(ctx)
}

// Page retrieves one slice of the user table, ordered by id
func (s *service) Page(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.repo.GetUsersPage(ctx, limit, offset)
}

// Search returns the first user whose username or email contains the
// respective fragment
func (s *service) Search(ctx context.Context, partialUsername, partialEmail string) (*models.User, error) {
	u, err := s.repo.SearchUser(ctx, partialUsername, partialEmail)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ChangeEmail updates a user's email address. The same uniqueness policy as
// Create applies: a constraint failure rolls back and maps to
// ErrDuplicateEmail.
func (s *service) ChangeEmail(ctx context.Context, username, newEmail string) error {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	if err := s.repo.UpdateUserEmail(ctx, username, newEmail); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Delete removes the user row. Todos and categories owned by the user are
// deliberately left in place.
func (s *service) Delete(ctx context.Context, username string) error {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	return s.repo.DeleteUser(ctx, username)
}
