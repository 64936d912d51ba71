package model

// Todo is the domain model for a todo entry.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Draft is what a caller hands over when creating a todo.
// The id is always assigned by the store; a nil Completed means the
// caller did not set it.
type Draft struct {
	Title     string `json:"title"`
	Completed *bool  `json:"completed,omitempty"`
}
