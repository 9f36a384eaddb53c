package app

import (
	"database/sql"

	"github.com/tarealabs/tarea/internal/database"
	categoryservice "github.com/tarealabs/tarea/internal/services/category"
	todoservice "github.com/tarealabs/tarea/internal/services/todo"
	userservice "github.com/tarealabs/tarea/internal/services/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db   *sql.DB
	repo database.DataStore

	// Service layer (business logic)
	UserService     userservice.Service
	TodoService     todoservice.Service
	CategoryService categoryservice.Service
}

// New creates a new App over the given database connection.
// This is the single entry point for creating the application container;
// tests pass an in-memory connection.
func New(db *sql.DB) *App {
	repo := database.NewRepository(db)
	return &App{
		db:              db,
		repo:            repo,
		UserService:     userservice.NewService(repo),
		TodoService:     todoservice.NewService(repo),
		CategoryService: categoryservice.NewService(repo),
	}
}

// DB returns the underlying connection. The init command needs it to rebuild
// the schema.
func (a *App) DB() *sql.DB {
	return a.db
}

// Repo returns the repository for direct data access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database connection
func (a *App) Close() error {
	return a.db.Close()
}
