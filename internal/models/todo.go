package models

// Todo represents a single todo item owned by a user
type Todo struct {
	ID     int
	UserID int
	Text   string
	Done   bool
}

// Toggle flips the done state
func (t *Todo) Toggle() {
	t.Done = !t.Done
}

// TodoWithOwner is a read DTO pairing a todo with its owner's username.
// Username is empty when the owning user has been deleted.
type TodoWithOwner struct {
	Todo
	Username string
}
