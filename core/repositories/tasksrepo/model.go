package tasksrepo

import "time"

// Task is the sole entity managed by the service.
type Task struct {
	TaskID      int64     `json:"task_id" db:"task_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// NewTask contains the fields for creating a task. The store assigns the
// id and both timestamps.
type NewTask struct {
	Title       string
	Description string
	Completed   bool
}

// UpdateTask contains the fields for a full replace of a task's mutable
// fields. The store refreshes updated_at.
type UpdateTask struct {
	Title       string
	Description string
	Completed   bool
}

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	Completed *bool
}
