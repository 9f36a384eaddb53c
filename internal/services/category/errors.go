package category

import "errors"

// Category-related errors
var (
	// Validation errors
	ErrTextTooLong = errors.New("category text cannot exceed 255 characters")

	// Business logic errors
	ErrUserNotFound      = errors.New("user not found")
	ErrTodoNotFound      = errors.New("todo not found")
	ErrOwnershipMismatch = errors.New("todo belongs to a different user")
	ErrDuplicateCategory = errors.New("category already exists for user")
)
