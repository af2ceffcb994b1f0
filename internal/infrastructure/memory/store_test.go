package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
)

func TestMeetingOwnerScoping(t *testing.T) {
	ctx := context.Background()
	r := NewMeetingRepository()

	idA, err := r.Create(ctx, &entity.Meeting{UserID: "alice", Company: "Acme", Date: "2026-09-01"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &entity.Meeting{UserID: "bob", Company: "Globex", Date: "2026-09-02"})
	require.NoError(t, err)

	// bob cannot read alice's meeting
	_, err = r.FindByID(ctx, idA, "bob")
	require.ErrorIs(t, err, repository.ErrNotFound)

	// bob cannot update or delete it either
	company := "Hijacked"
	ok, err := r.Update(ctx, idA, "bob", repository.MeetingPatch{Company: &company})
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = r.Delete(ctx, idA, "bob")
	require.NoError(t, err)
	require.False(t, ok)

	// listings only see the owner's documents
	list, err := r.FindByOwner(ctx, "alice", repository.MeetingFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Acme", list[0].Company)
}

func TestMeetingSortAndFilter(t *testing.T) {
	ctx := context.Background()
	r := NewMeetingRepository()

	for _, m := range []*entity.Meeting{
		{UserID: "u", Company: "C", Date: "2026-09-10", Status: entity.MeetingScheduled},
		{UserID: "u", Company: "A", Date: "2026-09-01", Status: entity.MeetingCompleted},
		{UserID: "u", Company: "B", Date: "2026-09-05", Status: entity.MeetingScheduled},
	} {
		_, err := r.Create(ctx, m)
		require.NoError(t, err)
	}

	list, err := r.FindByOwner(ctx, "u", repository.MeetingFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, []string{"2026-09-01", "2026-09-05", "2026-09-10"},
		[]string{list[0].Date, list[1].Date, list[2].Date}, "dates must be ascending")

	scheduled, err := r.FindByOwner(ctx, "u", repository.MeetingFilter{Status: entity.MeetingScheduled})
	require.NoError(t, err)
	require.Len(t, scheduled, 2)

	ranged, err := r.FindByOwner(ctx, "u", repository.MeetingFilter{DateFrom: "2026-09-02", DateTo: "2026-09-06"})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	require.Equal(t, "B", ranged[0].Company)
}

func TestTaskCompletedAtLifecycle(t *testing.T) {
	ctx := context.Background()
	r := NewTaskRepository()

	id, err := r.Create(ctx, &entity.Task{UserID: "u", Title: "Follow up", DueDate: "2026-09-03", Status: entity.TaskTodo})
	require.NoError(t, err)

	done := entity.TaskDone
	ok, err := r.Update(ctx, id, "u", repository.TaskPatch{Status: &done})
	require.NoError(t, err)
	require.True(t, ok)

	got, err := r.FindByID(ctx, id, "u")
	require.NoError(t, err)
	require.NotNil(t, got.CompletedAt, "moving to done must stamp completed_at")
	firstStamp := *got.CompletedAt

	// done again must not re-stamp
	ok, err = r.Update(ctx, id, "u", repository.TaskPatch{Status: &done})
	require.NoError(t, err)
	require.True(t, ok)
	got, err = r.FindByID(ctx, id, "u")
	require.NoError(t, err)
	require.NotNil(t, got.CompletedAt)
	require.True(t, got.CompletedAt.Equal(firstStamp), "completed_at must be stable across repeated done updates")

	// moving away from done clears the stamp
	todo := entity.TaskTodo
	ok, err = r.Update(ctx, id, "u", repository.TaskPatch{Status: &todo})
	require.NoError(t, err)
	require.True(t, ok)
	got, err = r.FindByID(ctx, id, "u")
	require.NoError(t, err)
	require.Nil(t, got.CompletedAt)
}

func TestTaskOverdue(t *testing.T) {
	ctx := context.Background()
	r := NewTaskRepository()

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	_, err := r.Create(ctx, &entity.Task{UserID: "u", Title: "late", DueDate: yesterday, Status: entity.TaskTodo})
	require.NoError(t, err)
	_, err = r.Create(ctx, &entity.Task{UserID: "u", Title: "late but done", DueDate: yesterday, Status: entity.TaskDone})
	require.NoError(t, err)
	_, err = r.Create(ctx, &entity.Task{UserID: "u", Title: "future", DueDate: tomorrow, Status: entity.TaskTodo})
	require.NoError(t, err)

	overdue, err := r.FindOverdue(ctx, "u")
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	require.Equal(t, "late", overdue[0].Title)
}

func TestNotificationsUnreadAndMarkRead(t *testing.T) {
	ctx := context.Background()
	r := NewNotificationRepository()

	id1, err := r.Create(ctx, &entity.Notification{UserID: "u", Type: entity.NotifMeeting, Title: "first"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &entity.Notification{UserID: "u", Type: entity.NotifTask, Title: "second"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &entity.Notification{UserID: "other", Type: entity.NotifTask, Title: "foreign"})
	require.NoError(t, err)

	n, err := r.CountUnread(ctx, "u")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	ok, err := r.MarkRead(ctx, id1, "u")
	require.NoError(t, err)
	require.True(t, ok)

	n, err = r.CountUnread(ctx, "u")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	unread := false
	list, err := r.FindByOwner(ctx, "u", repository.NotificationFilter{Read: &unread})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "second", list[0].Title)

	updated, err := r.MarkAllRead(ctx, "u")
	require.NoError(t, err)
	require.Equal(t, 1, updated)

	n, err = r.CountUnread(ctx, "u")
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestChatSessionSaveAndFind(t *testing.T) {
	ctx := context.Background()
	r := NewChatRepository()

	_, err := r.FindBySessionID(ctx, "default", "u")
	require.ErrorIs(t, err, repository.ErrNotFound)

	s := &entity.ChatSession{UserID: "u", SessionID: "default", Messages: []entity.ChatMessage{
		{Sender: entity.SenderUser, Text: "hello", Timestamp: time.Now().UTC()},
	}}
	require.NoError(t, r.Save(ctx, s))

	got, err := r.FindBySessionID(ctx, "default", "u")
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)

	// same session id under another owner is a different conversation
	_, err = r.FindBySessionID(ctx, "default", "other")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestKPIUpsertAndSum(t *testing.T) {
	ctx := context.Background()
	r := NewKPIRepository()

	require.NoError(t, r.Upsert(ctx, &entity.KPIMetric{UserID: "u", Date: "2026-09-01", MeetingsScheduled: 2}))
	require.NoError(t, r.Upsert(ctx, &entity.KPIMetric{UserID: "u", Date: "2026-09-01", MeetingsScheduled: 3, MeetingsCompleted: 1}))
	require.NoError(t, r.Upsert(ctx, &entity.KPIMetric{UserID: "u", Date: "2026-09-02", MeetingsScheduled: 1}))

	m, err := r.FindByDate(ctx, "u", "2026-09-01")
	require.NoError(t, err)
	require.Equal(t, 3, m.MeetingsScheduled, "upsert must replace, not accumulate")

	sums, err := r.SumMeetingsByDate(ctx, "u", "2026-09-01", "2026-09-02")
	require.NoError(t, err)
	require.Equal(t, 4, sums["2026-09-01"])
	require.Equal(t, 1, sums["2026-09-02"])
}

func TestUserUniqueEmail(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	_, err := r.Create(ctx, &entity.User{Email: "a@example.com", FullName: "A"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &entity.User{Email: "a@example.com", FullName: "Dup"})
	require.Error(t, err)
}
