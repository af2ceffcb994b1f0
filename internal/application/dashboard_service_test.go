package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/infrastructure/memory"
)

func newDashboard() *DashboardService {
	repos := memory.NewRepositories()
	return NewDashboardService(repos.Meetings, repos.Tasks, repos.Notifications, repos.KPIs, nil)
}

func TestKPIsEmpty(t *testing.T) {
	s := newDashboard()

	kpis, err := s.KPIs(context.Background(), "u")
	require.NoError(t, err)
	require.Equal(t, 0, kpis.TotalMeetings)
	require.Equal(t, 0, kpis.TotalTasks)
	require.Equal(t, float64(0), kpis.TaskCompletionRate, "no tasks must yield rate 0, not NaN")
}

func TestKPIsCompletionRate(t *testing.T) {
	ctx := context.Background()
	s := newDashboard()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	for _, st := range []string{entity.TaskDone, entity.TaskDone, entity.TaskTodo} {
		_, err := s.Tasks.Create(ctx, &entity.Task{UserID: "u", Title: "t", DueDate: tomorrow, Status: st})
		require.NoError(t, err)
	}

	kpis, err := s.KPIs(ctx, "u")
	require.NoError(t, err)
	require.Equal(t, 3, kpis.TotalTasks)
	require.Equal(t, 2, kpis.DoneTasks)
	require.Equal(t, 1, kpis.TodoTasks)
	require.Equal(t, 66.7, kpis.TaskCompletionRate, "rate is rounded to one decimal")
}

func TestKPIsMeetingBuckets(t *testing.T) {
	ctx := context.Background()
	s := newDashboard()

	today := time.Now().Format("2006-01-02")
	inThree := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	lastWeek := time.Now().AddDate(0, 0, -7).Format("2006-01-02")

	for _, m := range []*entity.Meeting{
		{UserID: "u", Company: "A", Date: today, Status: entity.MeetingScheduled},
		{UserID: "u", Company: "B", Date: inThree, Status: entity.MeetingScheduled},
		{UserID: "u", Company: "C", Date: lastWeek, Status: entity.MeetingCompleted},
	} {
		_, err := s.Meetings.Create(ctx, m)
		require.NoError(t, err)
	}

	kpis, err := s.KPIs(ctx, "u")
	require.NoError(t, err)
	require.Equal(t, 3, kpis.TotalMeetings)
	require.Equal(t, 1, kpis.TodayMeetings)
	require.Equal(t, 2, kpis.UpcomingMeetings)
	require.Equal(t, 1, kpis.CompletedMeetings)
}

func TestRecentActivityMergeAndCap(t *testing.T) {
	ctx := context.Background()
	s := newDashboard()

	for i := 0; i < 7; i++ {
		date := time.Now().AddDate(0, 0, i).Format("2006-01-02")
		_, err := s.Meetings.Create(ctx, &entity.Meeting{UserID: "u", Company: "C", Contact: "P", Date: date, Status: entity.MeetingScheduled})
		require.NoError(t, err)
		_, err = s.Tasks.Create(ctx, &entity.Task{UserID: "u", Title: "t", DueDate: date, Status: entity.TaskTodo})
		require.NoError(t, err)
	}

	activities, err := s.RecentActivity(ctx, "u")
	require.NoError(t, err)
	require.Len(t, activities, 10, "feed is capped at ten entries")

	for i := 1; i < len(activities); i++ {
		prev, cur := activities[i-1], activities[i]
		if prev.when() < cur.when() {
			t.Fatalf("activity %d (%s) is newer than %d (%s)", i, cur.when(), i-1, prev.when())
		}
	}
}

func TestChartZeroFills(t *testing.T) {
	ctx := context.Background()
	s := newDashboard()

	points, err := s.Chart(ctx, "u", 7)
	require.NoError(t, err)
	require.Len(t, points, 7)

	today := time.Now().Format("2006-01-02")
	require.Equal(t, today, points[6].Date, "series ends today")
	for _, p := range points {
		require.Equal(t, 0, p.Meetings)
		require.Contains(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, p.Name)
	}
}

func TestChartReflectsTodaysMeetings(t *testing.T) {
	ctx := context.Background()
	s := newDashboard()

	today := time.Now().Format("2006-01-02")
	for i := 0; i < 2; i++ {
		_, err := s.Meetings.Create(ctx, &entity.Meeting{UserID: "u", Company: "C", Date: today, Status: entity.MeetingScheduled})
		require.NoError(t, err)
	}

	points, err := s.Chart(ctx, "u", 7)
	require.NoError(t, err)
	require.Equal(t, 2, points[6].Meetings, "today's rollup runs before the chart is built")
}

func TestRefreshDailyMetricsFollowUps(t *testing.T) {
	ctx := context.Background()
	s := newDashboard()

	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	// completed meeting with no done follow-up task
	needsFollowUp, err := s.Meetings.Create(ctx, &entity.Meeting{UserID: "u", Company: "A", Date: yesterday, Status: entity.MeetingCompleted})
	require.NoError(t, err)

	// completed meeting whose follow-up is done
	covered, err := s.Meetings.Create(ctx, &entity.Meeting{UserID: "u", Company: "B", Date: yesterday, Status: entity.MeetingCompleted})
	require.NoError(t, err)
	_, err = s.Tasks.Create(ctx, &entity.Task{UserID: "u", Title: "report", MeetingID: covered, DueDate: today, Status: entity.TaskDone})
	require.NoError(t, err)
	_ = needsFollowUp

	require.NoError(t, s.RefreshDailyMetrics(ctx, "u", today))

	metric, err := s.KPIRepo.FindByDate(ctx, "u", today)
	require.NoError(t, err)
	require.Equal(t, 1, metric.FollowUpsRequired)
}
