package entity

import "time"

// Notification types.
const (
	NotifMeeting  = "meeting"
	NotifTask     = "task"
	NotifFollowUp = "followup"
	NotifSystem   = "system"
)

// Notification is owned by exactly one user. MeetingID and TaskID are soft
// references, not enforced by the store.
type Notification struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Read        bool      `json:"read"`
	MeetingID   string    `json:"meeting_id,omitempty"`
	TaskID      string    `json:"task_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MeetingCreated builds the notification recorded when a meeting is scheduled.
func MeetingCreated(userID string, m *Meeting) *Notification {
	return &Notification{
		UserID:      userID,
		Type:        NotifMeeting,
		Title:       "Meeting Scheduled: " + m.Company,
		Description: m.Subject + " scheduled for " + m.Date + " at " + m.Time,
		MeetingID:   m.ID,
	}
}

// TaskCreated builds the notification recorded when a task is assigned.
func TaskCreated(userID string, t *Task) *Notification {
	return &Notification{
		UserID:      userID,
		Type:        NotifTask,
		Title:       "New Task Assigned: " + t.Title,
		Description: "Task assigned to " + t.Assignee + " due " + t.DueDate,
		TaskID:      t.ID,
	}
}
