package entity

import "time"

// Meeting statuses and shared priorities.
const (
	MeetingScheduled = "scheduled"
	MeetingCompleted = "completed"
	MeetingCancelled = "cancelled"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Meeting is owned by exactly one user. Date is YYYY-MM-DD, Time is a
// wall-clock string like "10:30 AM"; both are kept as strings end to end the
// way the API exchanges them.
type Meeting struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Company        string    `json:"company"`
	Contact        string    `json:"contact"`
	Subject        string    `json:"subject"`
	Description    string    `json:"description,omitempty"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Duration       int       `json:"duration"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	Notes          string    `json:"notes,omitempty"`
	Attendees      []string  `json:"attendees"`
	Tags           []string  `json:"tags"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	CompanyAddress string    `json:"company_address,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
