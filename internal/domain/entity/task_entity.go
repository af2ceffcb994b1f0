package entity

import "time"

// Task statuses (Kanban columns).
const (
	TaskTodo       = "todo"
	TaskInProgress = "inprogress"
	TaskDone       = "done"
)

// Task is owned by exactly one user. MeetingID is a soft reference to the
// meeting the task follows up on. CompletedAt is stamped when the task moves
// to done and cleared when it moves away again.
type Task struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	MeetingID      string     `json:"meeting_id,omitempty"`
	Assignee       string     `json:"assignee"`
	AssigneeUserID string     `json:"assignee_user_id,omitempty"`
	DueDate        string     `json:"due_date"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	Tags           []string   `json:"tags"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CompletedAt    *time.Time `json:"completed_at"`
}
