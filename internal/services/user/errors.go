package user

import "errors"

// User-related errors
var (
	// ErrUserNotFound indicates that no user matched the lookup
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser indicates that the username or email is already taken
	ErrDuplicateUser = errors.New("username or email already exists")

	// ErrDuplicateEmail indicates that an email change collided with another user
	ErrDuplicateEmail = errors.New("email already exists")
)
