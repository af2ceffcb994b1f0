package application

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	repo "github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
)

// DashboardService aggregates the owner's meetings, tasks and notifications
// into the KPI, activity and chart views.
type DashboardService struct {
	Meetings      repo.MeetingRepository
	Tasks         repo.TaskRepository
	Notifications repo.NotificationRepository
	KPIRepo       repo.KPIRepository
	Logger        *logrus.Logger
}

func NewDashboardService(meetings repo.MeetingRepository, tasks repo.TaskRepository, notifications repo.NotificationRepository, kpis repo.KPIRepository, logger *logrus.Logger) *DashboardService {
	return &DashboardService{
		Meetings:      meetings,
		Tasks:         tasks,
		Notifications: notifications,
		KPIRepo:       kpis,
		Logger:        logger,
	}
}

type DashboardKPIs struct {
	TotalMeetings       int     `json:"total_meetings"`
	TodayMeetings       int     `json:"today_meetings"`
	UpcomingMeetings    int     `json:"upcoming_meetings"`
	CompletedMeetings   int     `json:"completed_meetings"`
	TotalTasks          int     `json:"total_tasks"`
	TodoTasks           int     `json:"todo_tasks"`
	InProgressTasks     int     `json:"inprogress_tasks"`
	DoneTasks           int     `json:"done_tasks"`
	OverdueTasks        int     `json:"overdue_tasks"`
	TaskCompletionRate  float64 `json:"task_completion_rate"`
	TotalNotifications  int     `json:"total_notifications"`
	UnreadNotifications int     `json:"unread_notifications"`
}

// KPIs computes the dashboard counters. The completion rate is 0 when the
// user has no tasks.
func (s *DashboardService) KPIs(ctx context.Context, userID string) (*DashboardKPIs, error) {
	today := time.Now().Format("2006-01-02")

	allMeetings, err := s.Meetings.FindByOwner(ctx, userID, repo.MeetingFilter{})
	if err != nil {
		return nil, err
	}
	todayMeetings, err := s.Meetings.FindByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.Meetings.FindUpcoming(ctx, userID, 7)
	if err != nil {
		return nil, err
	}

	allTasks, err := s.Tasks.FindByOwner(ctx, userID, repo.TaskFilter{})
	if err != nil {
		return nil, err
	}
	overdue, err := s.Tasks.FindOverdue(ctx, userID)
	if err != nil {
		return nil, err
	}

	allNotifs, err := s.Notifications.FindByOwner(ctx, userID, repo.NotificationFilter{})
	if err != nil {
		return nil, err
	}
	unread, err := s.Notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	kpis := &DashboardKPIs{
		TotalMeetings:       len(allMeetings),
		TodayMeetings:       len(todayMeetings),
		UpcomingMeetings:    len(upcoming),
		TotalTasks:          len(allTasks),
		OverdueTasks:        len(overdue),
		TotalNotifications:  len(allNotifs),
		UnreadNotifications: unread,
	}
	for _, m := range allMeetings {
		if m.Status == entity.MeetingCompleted {
			kpis.CompletedMeetings++
		}
	}
	for _, t := range allTasks {
		switch t.Status {
		case entity.TaskTodo:
			kpis.TodoTasks++
		case entity.TaskInProgress:
			kpis.InProgressTasks++
		case entity.TaskDone:
			kpis.DoneTasks++
		}
	}
	if kpis.TotalTasks > 0 {
		rate := float64(kpis.DoneTasks) / float64(kpis.TotalTasks) * 100
		kpis.TaskCompletionRate = math.Round(rate*10) / 10
	}
	return kpis, nil
}

type Activity struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
	Status   string `json:"status"`
	Priority string `json:"priority,omitempty"`
}

func (a Activity) when() string {
	if a.Date != "" {
		return a.Date
	}
	return a.DueDate
}

// RecentActivity merges the five most recent meetings and tasks into one
// date-descending feed capped at ten entries.
func (s *DashboardService) RecentActivity(ctx context.Context, userID string) ([]Activity, error) {
	meetings, err := s.Meetings.FindByOwner(ctx, userID, repo.MeetingFilter{})
	if err != nil {
		return nil, err
	}
	tasks, err := s.Tasks.FindByOwner(ctx, userID, repo.TaskFilter{})
	if err != nil {
		return nil, err
	}
	if len(meetings) > 5 {
		meetings = meetings[:5]
	}
	if len(tasks) > 5 {
		tasks = tasks[:5]
	}

	activities := make([]Activity, 0, len(meetings)+len(tasks))
	for _, m := range meetings {
		activities = append(activities, Activity{
			Type:   "meeting",
			ID:     m.ID,
			Title:  "Meeting with " + m.Contact + " - " + m.Company,
			Date:   m.Date,
			Status: m.Status,
		})
	}
	for _, t := range tasks {
		activities = append(activities, Activity{
			Type:     "task",
			ID:       t.ID,
			Title:    t.Title,
			DueDate:  t.DueDate,
			Status:   t.Status,
			Priority: t.Priority,
		})
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].when() > activities[j].when()
	})
	if len(activities) > 10 {
		activities = activities[:10]
	}
	return activities, nil
}

// Chart returns the last `days` days of meeting activity, zero-filled for
// days without metrics. Today's counters are recomputed first so the chart
// reflects meetings created since the last rollup.
func (s *DashboardService) Chart(ctx context.Context, userID string, days int) ([]entity.ChartPoint, error) {
	if days <= 0 {
		days = 7
	}
	if err := s.RefreshDailyMetrics(ctx, userID, time.Now().Format("2006-01-02")); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("refresh daily metrics failed")
	}

	end := time.Now()
	start := end.AddDate(0, 0, -(days - 1))
	sums, err := s.KPIRepo.SumMeetingsByDate(ctx, userID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	dayNames := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	points := make([]entity.ChartPoint, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		date := day.Format("2006-01-02")
		points = append(points, entity.ChartPoint{
			Name:     dayNames[int(day.Weekday())],
			Date:     date,
			Meetings: sums[date],
		})
	}
	return points, nil
}

// RefreshDailyMetrics recomputes and stores the owner's counters for one day.
func (s *DashboardService) RefreshDailyMetrics(ctx context.Context, userID, date string) error {
	dayMeetings, err := s.Meetings.FindByDate(ctx, userID, date)
	if err != nil {
		return err
	}
	allTasks, err := s.Tasks.FindByOwner(ctx, userID, repo.TaskFilter{})
	if err != nil {
		return err
	}

	metric := &entity.KPIMetric{UserID: userID, Date: date}
	for _, m := range dayMeetings {
		switch m.Status {
		case entity.MeetingScheduled:
			metric.MeetingsScheduled++
		case entity.MeetingCompleted:
			metric.MeetingsCompleted++
		}
	}
	for _, t := range allTasks {
		if t.CompletedAt != nil && t.CompletedAt.Format("2006-01-02") == date {
			metric.TasksCompleted++
		}
		if t.Status != entity.TaskDone && t.DueDate == date {
			metric.TasksPending++
		}
	}

	// A completed meeting within the last 3 days with no finished follow-up
	// task still needs attention.
	cutoff := time.Now().AddDate(0, 0, -3).Format("2006-01-02")
	completed, err := s.Meetings.FindByOwner(ctx, userID, repo.MeetingFilter{Status: entity.MeetingCompleted, DateFrom: cutoff})
	if err != nil {
		return err
	}
	for _, m := range completed {
		related, err := s.Tasks.FindByMeeting(ctx, m.ID, userID)
		if err != nil {
			return err
		}
		anyDone := false
		for _, t := range related {
			if t.Status == entity.TaskDone {
				anyDone = true
				break
			}
		}
		if !anyDone {
			metric.FollowUpsRequired++
		}
	}

	return s.KPIRepo.Upsert(ctx, metric)
}
