package todo

import "errors"

// Todo-related errors
var (
	// Validation errors
	ErrTextTooLong = errors.New("todo text cannot exceed 255 characters")

	// Business logic errors
	ErrTodoNotFound      = errors.New("todo not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrOwnershipMismatch = errors.New("todo belongs to a different user")
)
