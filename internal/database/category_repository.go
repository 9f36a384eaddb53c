package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tarealabs/tarea/internal/models"
)

// CategoryRepo handles data access for categories and their todo associations
type CategoryRepo struct {
	db *sql.DB
}

// CreateCategory inserts the category and fills in its generated ID.
// Per-user text uniqueness is the caller's concern; the schema allows
// duplicates.
func (r *CategoryRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (user_id, text) VALUES (?, ?)`,
		category.UserID, category.Text,
	)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new category id: %w", err)
	}
	category.ID = int(id)
	return nil
}

// GetCategoryByText retrieves a user's category by its text, or nil when no
// row matches
func (r *CategoryRepo) GetCategoryByText(ctx context.Context, userID int, text string) (*models.Category, error) {
	category := &models.Category{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, text FROM categories WHERE user_id = ? AND text = ?`,
		userID, text,
	).Scan(&category.ID, &category.UserID, &category.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category %q: %w", text, err)
	}
	return category, nil
}

// GetCategoriesForUser retrieves all of a user's categories in insertion order
func (r *CategoryRepo) GetCategoriesForUser(ctx context.Context, userID int) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, text FROM categories WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories for user %d: %w", userID, err)
	}
	defer rows.Close()

	return scanCategories(rows)
}

// GetCategoriesForTodo retrieves all categories associated with a todo
func (r *CategoryRepo) GetCategoriesForTodo(ctx context.Context, todoID int) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.user_id, c.text
		FROM categories c
		INNER JOIN todo_categories tc ON c.id = tc.category_id
		WHERE tc.todo_id = ?
		ORDER BY c.id`,
		todoID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories for todo %d: %w", todoID, err)
	}
	defer rows.Close()

	return scanCategories(rows)
}

// AssignCategoryToTodo writes the association row. The composite primary key
// makes re-assignment a no-op via INSERT OR IGNORE.
func (r *CategoryRepo) AssignCategoryToTodo(ctx context.Context, todoID, categoryID int) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO todo_categories (todo_id, category_id) VALUES (?, ?)`,
		todoID, categoryID,
	); err != nil {
		return fmt.Errorf("failed to assign category %d to todo %d: %w", categoryID, todoID, err)
	}
	return nil
}

func scanCategories(rows *sql.Rows) ([]*models.Category, error) {
	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.ID, &category.UserID, &category.Text); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
