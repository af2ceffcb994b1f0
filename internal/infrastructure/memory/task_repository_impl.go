package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
)

// TaskRepository is the in-memory task store.
type TaskRepository struct {
	mu    sync.Mutex
	tasks map[string]*entity.Task
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[string]*entity.Task)}
}

func cloneTask(t *entity.Task) *entity.Task {
	cp := *t
	cp.Tags = append([]string(nil), t.Tags...)
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		cp.CompletedAt = &at
	}
	return &cp
}

func (r *TaskRepository) Create(_ context.Context, t *entity.Task) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	t.ID = newID()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Tags == nil {
		t.Tags = []string{}
	}
	r.tasks[t.ID] = cloneTask(t)
	return t.ID, nil
}

func (r *TaskRepository) FindByID(_ context.Context, id, ownerID string) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	return cloneTask(t), nil
}

func (r *TaskRepository) FindByOwner(_ context.Context, ownerID string, f repository.TaskFilter) ([]*entity.Task, error) {
	return r.find(func(t *entity.Task) bool {
		if t.UserID != ownerID {
			return false
		}
		if f.Status != "" && t.Status != f.Status {
			return false
		}
		if f.Priority != "" && t.Priority != f.Priority {
			return false
		}
		if f.Assignee != "" && t.Assignee != f.Assignee {
			return false
		}
		return true
	})
}

func (r *TaskRepository) FindOverdue(_ context.Context, ownerID string) ([]*entity.Task, error) {
	today := time.Now().Format("2006-01-02")
	return r.find(func(t *entity.Task) bool {
		return t.UserID == ownerID && t.Status != entity.TaskDone && t.DueDate < today
	})
}

func (r *TaskRepository) FindByMeeting(_ context.Context, meetingID, ownerID string) ([]*entity.Task, error) {
	return r.find(func(t *entity.Task) bool {
		return t.UserID == ownerID && t.MeetingID == meetingID
	})
}

func (r *TaskRepository) Update(_ context.Context, id, ownerID string, patch repository.TaskPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != ownerID {
		return false, nil
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.MeetingID != nil {
		t.MeetingID = *patch.MeetingID
	}
	if patch.Assignee != nil {
		t.Assignee = *patch.Assignee
	}
	if patch.AssigneeUserID != nil {
		t.AssigneeUserID = *patch.AssigneeUserID
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Tags != nil {
		t.Tags = append([]string(nil), patch.Tags...)
	}
	if patch.Status != nil {
		t.Status = *patch.Status
		switch {
		case t.Status == entity.TaskDone && t.CompletedAt == nil:
			now := time.Now().UTC()
			t.CompletedAt = &now
		case t.Status != entity.TaskDone:
			t.CompletedAt = nil
		}
	}
	t.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *TaskRepository) Delete(_ context.Context, id, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != ownerID {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

func (r *TaskRepository) find(match func(*entity.Task) bool) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]*entity.Task, 0)
	for _, t := range r.tasks {
		if match(t) {
			tasks = append(tasks, cloneTask(t))
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].DueDate < tasks[j].DueDate
	})
	return tasks, nil
}
