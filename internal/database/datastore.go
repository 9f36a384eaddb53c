package database

import (
	"context"

	"github.com/tarealabs/tarea/internal/models"
)

// DataStore defines the unified interface for all data operations needed by
// the services. Single-row getters return (nil, nil) when no row matches;
// absence handling and the error taxonomy live in the service layer.
type DataStore interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUsersPage(ctx context.Context, limit, offset int) ([]*models.User, error)
	SearchUser(ctx context.Context, partialUsername, partialEmail string) (*models.User, error)
	UpdateUserEmail(ctx context.Context, username, newEmail string) error
	DeleteUser(ctx context.Context, username string) error

	// Todos
	CreateTodo(ctx context.Context, todo *models.Todo) error
	GetTodoByID(ctx context.Context, id int) (*models.TodoWithOwner, error)
	GetAllTodos(ctx context.Context) ([]*models.TodoWithOwner, error)
	SetTodoDone(ctx context.Context, id int, done bool) error
	DeleteTodo(ctx context.Context, id int) error
	CompleteAllForUser(ctx context.Context, userID int) error

	// Categories
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByText(ctx context.Context, userID int, text string) (*models.Category, error)
	GetCategoriesForUser(ctx context.Context, userID int) ([]*models.Category, error)
	GetCategoriesForTodo(ctx context.Context, todoID int) ([]*models.Category, error)
	AssignCategoryToTodo(ctx context.Context, todoID, categoryID int) error
}
