package entity

import "time"

// KPIMetric is one owner's daily activity counters, keyed by (user, date).
type KPIMetric struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Date              string    `json:"date"`
	MeetingsScheduled int       `json:"meetings_scheduled"`
	MeetingsCompleted int       `json:"meetings_completed"`
	TasksCompleted    int       `json:"tasks_completed"`
	TasksPending      int       `json:"tasks_pending"`
	FollowUpsRequired int       `json:"follow_ups_required"`
	CreatedAt         time.Time `json:"created_at"`
}

// ChartPoint is one day in the dashboard activity series.
type ChartPoint struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Meetings int    `json:"meetings"`
}
