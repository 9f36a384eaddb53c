package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tarealabs/tarea/internal/models"
)

// UserRepo handles data access for users
type UserRepo struct {
	db *sql.DB
}

// CreateUser inserts the user and fills in its generated ID. The insert runs
// in its own transaction so a unique-constraint failure rolls back cleanly;
// the driver error is returned wrapped for the service layer to classify.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, email, password) VALUES (?, ?, ?)`,
			user.Username, user.Email, user.Password,
		)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read new user id: %w", err)
		}
		user.ID = int(id)
		return nil
	})
}

// GetUserByUsername retrieves one user, or nil when no row matches
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password FROM users WHERE username = ?`,
		username,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	return user, nil
}

// GetAllUsers retrieves every user in insertion order
func (r *UserRepo) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, email, password FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// GetUsersPage retrieves a slice of users ordered by id, so repeated calls
// with advancing offsets walk the table deterministically
func (r *UserRepo) GetUsersPage(ctx context.Context, limit, offset int) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, email, password FROM users ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get users page: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// SearchUser returns the first user whose username contains partialUsername
// or whose email contains partialEmail, or nil when nothing matches
func (r *UserRepo) SearchUser(ctx context.Context, partialUsername, partialEmail string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password FROM users
		 WHERE username LIKE '%' || ? || '%' OR email LIKE '%' || ? || '%'
		 ORDER BY id LIMIT 1`,
		partialUsername, partialEmail,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return user, nil
}

// UpdateUserEmail changes a user's email. Like CreateUser it runs in its own
// transaction and surfaces constraint failures to the caller.
func (r *UserRepo) UpdateUserEmail(ctx context.Context, username, newEmail string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET email = ? WHERE username = ?`,
			newEmail, username,
		); err != nil {
			return fmt.Errorf("failed to update email for %q: %w", username, err)
		}
		return nil
	})
}

// DeleteUser removes the user row only. Todos and categories owned by the
// user are left in place.
func (r *UserRepo) DeleteUser(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE username = ?`, username,
	); err != nil {
		return fmt.Errorf("failed to delete user %q: %w", username, err)
	}
	return nil
}

func scanUsers(rows *sql.Rows) ([]*models.User, error) {
	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.Password); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
