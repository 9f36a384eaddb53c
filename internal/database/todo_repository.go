package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tarealabs/tarea/internal/models"
)

// TodoRepo handles data access for todos
type TodoRepo struct {
	db *sql.DB
}

// CreateTodo inserts the todo and fills in its generated ID
func (r *TodoRepo) CreateTodo(ctx context.Context, todo *models.Todo) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (user_id, text, done) VALUES (?, ?, ?)`,
		todo.UserID, todo.Text, todo.Done,
	)
	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new todo id: %w", err)
	}
	todo.ID = int(id)
	return nil
}

// GetTodoByID retrieves one todo with its owner's username, or nil when no
// row matches. The LEFT JOIN keeps orphaned todos readable; their Username
// comes back empty.
func (r *TodoRepo) GetTodoByID(ctx context.Context, id int) (*models.TodoWithOwner, error) {
	todo := &models.TodoWithOwner{}
	var username sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT t.id, t.user_id, t.text, t.done, u.username
		FROM todos t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE t.id = ?`,
		id,
	).Scan(&todo.ID, &todo.UserID, &todo.Text, &todo.Done, &username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo %d: %w", id, err)
	}
	todo.Username = username.String
	return todo, nil
}

// GetAllTodos retrieves every todo with its owner's username, in insertion order
func (r *TodoRepo) GetAllTodos(ctx context.Context) ([]*models.TodoWithOwner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.user_id, t.text, t.done, u.username
		FROM todos t
		LEFT JOIN users u ON u.id = t.user_id
		ORDER BY t.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}
	defer rows.Close()

	var todos []*models.TodoWithOwner
	for rows.Next() {
		todo := &models.TodoWithOwner{}
		var username sql.NullString
		if err := rows.Scan(&todo.ID, &todo.UserID, &todo.Text, &todo.Done, &username); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todo.Username = username.String
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

// SetTodoDone updates the done flag of one todo
func (r *TodoRepo) SetTodoDone(ctx context.Context, id int, done bool) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE todos SET done = ? WHERE id = ?`, done, id,
	); err != nil {
		return fmt.Errorf("failed to set done on todo %d: %w", id, err)
	}
	return nil
}

// DeleteTodo removes a todo by ID. Association rows in todo_categories are
// removed by the ON DELETE CASCADE on the join table.
func (r *TodoRepo) DeleteTodo(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM todos WHERE id = ?`, id,
	); err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}
	return nil
}

// CompleteAllForUser marks every todo owned by the user as done in one batch
func (r *TodoRepo) CompleteAllForUser(ctx context.Context, userID int) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE todos SET done = 1 WHERE user_id = ?`, userID,
	); err != nil {
		return fmt.Errorf("failed to complete todos for user %d: %w", userID, err)
	}
	return nil
}
