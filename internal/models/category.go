package models

// Category represents a user-owned grouping that can be attached to todos.
// Uniqueness of (UserID, Text) is enforced by the service layer, not the schema.
type Category struct {
	ID     int
	UserID int
	Text   string
}

// TodoCategory is the association row linking a todo to a category.
// The composite primary key (TodoID, CategoryID) prevents duplicate links.
type TodoCategory struct {
	TodoID     int
	CategoryID int
}
