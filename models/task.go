package models

// Task is a row in the tasks table, always owned by exactly one user.
type Task struct {
	ID        int64  `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Completed bool   `json:"completed" db:"completed"`
	UserID    int64  `json:"user_id" db:"user_id"`
}

// CreateTaskRequest is the body of POST /tasks. The owner comes from the
// authenticated identity, never from the body.
type CreateTaskRequest struct {
	Title string `json:"title" validate:"required,notblank"`
}

// UpdateTaskRequest is the body of PATCH /tasks/:id. Pointer fields
// distinguish "omitted" from "zero value"; at least one must be present.
type UpdateTaskRequest struct {
	Title     *string `json:"title" validate:"omitempty,notblank"`
	Completed *bool   `json:"completed"`
}
