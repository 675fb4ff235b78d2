package tasksrepobridge

// Task is the transport model returned to clients. Timestamps are RFC3339
// strings.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TaskInput is the request body shared by create and update. Pointers
// distinguish absent fields from zero values: title must be present,
// description and completed are optional.
type TaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// taskResponse wraps a single task for GET by id.
type taskResponse struct {
	Task Task `json:"task"`
}

// listResponse carries a page of tasks plus the total matching the filter.
type listResponse struct {
	Tasks []Task `json:"tasks"`
	Count int    `json:"count"`
}

// confirmResponse acknowledges a mutation that returns no entity body.
type confirmResponse struct {
	Message string `json:"message"`
	TaskID  int64  `json:"taskId"`
}
