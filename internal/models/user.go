package models

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// User represents an account that owns todos and categories
type User struct {
	ID       int
	Username string
	Email    string
	Password string // bcrypt hash, never the raw password
}

// NewUser creates a user with the password hashed immediately,
// so a plaintext password never reaches the database layer.
func NewUser(username, email, password string) (*User, error) {
	u := &User{
		Username: username,
		Email:    email,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword replaces the stored hash with a bcrypt hash of the raw password
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether the raw password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// String renders the user for CLI output. The password is deliberately
// excluded.
func (u *User) String() string {
	return fmt.Sprintf("(User id=%d, username=%s, email=%s)", u.ID, u.Username, u.Email)
}
