package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tarealabs/tarea/internal/models"
)

// schemaStatements creates the four tables and their indexes.
//
// users.id is not declared as an enforced foreign key on todos/categories:
// deleting a user leaves its rows behind rather than failing, and the
// existence checks live in the services. The join table does enforce its
// foreign keys so that deleting a todo or category cleans up associations.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
	`CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		text TEXT NOT NULL,
		done BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_todos_user ON todos(user_id)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		text TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_categories_user ON categories(user_id)`,
	`CREATE TABLE IF NOT EXISTS todo_categories (
		todo_id INTEGER NOT NULL,
		category_id INTEGER NOT NULL,
		PRIMARY KEY (todo_id, category_id),
		FOREIGN KEY (todo_id) REFERENCES todos(id) ON DELETE CASCADE,
		FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
	)`,
}

// dropStatements removes everything, join table first
var dropStatements = []string{
	`DROP TABLE IF EXISTS todo_categories`,
	`DROP TABLE IF EXISTS categories`,
	`DROP TABLE IF EXISTS todos`,
	`DROP TABLE IF EXISTS users`,
}

// EnsureSchema creates any missing tables and indexes
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Initialize drops all tables, recreates the schema, and seeds the default
// user (bob). Everything runs in one transaction so a failed seed leaves no
// half-built schema behind.
func Initialize(ctx context.Context, db *sql.DB) error {
	seed, err := models.NewUser("bob", "bob@mail.com", "bobpass")
	if err != nil {
		return fmt.Errorf("failed to build seed user: %w", err)
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range dropStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to drop tables: %w", err)
			}
		}
		for _, stmt := range schemaStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to create tables: %w", err)
			}
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, email, password) VALUES (?, ?, ?)`,
			seed.Username, seed.Email, seed.Password,
		)
		if err != nil {
			return fmt.Errorf("failed to seed default user: %w", err)
		}
		return nil
	})
}
