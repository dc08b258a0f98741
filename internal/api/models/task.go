package models

// Status is one of the three board columns a task can sit in.
type Status string

const (
	StatusTodo     Status = "todo"
	StatusProgress Status = "progress"
	StatusDone     Status = "done"
)

// ParseStatus reports whether s names a known column.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusTodo, StatusProgress, StatusDone:
		return Status(s), true
	}
	return "", false
}

// StatusOrDefault returns the parsed status, falling back to todo for an
// empty or unrecognized value. Task creation is forgiving here; moves are not.
func StatusOrDefault(s string) Status {
	if st, ok := ParseStatus(s); ok {
		return st
	}
	return StatusTodo
}

// Task represents a task row. The json tags match what the board client
// renders: {id, task, status}.
type Task struct {
	ID      int64  `db:"id" json:"id"`
	OwnerID int64  `db:"user_id" json:"-"`
	Text    string `db:"task" json:"task"`
	Status  Status `db:"status" json:"status"`
}

// CreateTaskRequest defines the structure for a task creation request.
// Status is optional and validated leniently (unknown values become todo).
type CreateTaskRequest struct {
	Task   string `json:"task" binding:"required"`
	Status string `json:"status"`
}

// MoveTaskRequest defines the structure for a status-change request.
type MoveTaskRequest struct {
	Status string `json:"status" binding:"required,taskstatus"`
}
