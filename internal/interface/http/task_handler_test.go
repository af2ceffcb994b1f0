package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/infrastructure/memory"
)

func taskEngine(userID string) (*gin.Engine, *TaskHandler) {
	repos := memory.NewRepositories()
	h := NewTaskHandler(repos.Tasks, repos.Notifications, testLogger())

	r := gin.New()
	g := r.Group("/api/tasks", asUser(userID))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:task_id", h.Get)
	g.PUT("/:task_id", h.Update)
	g.DELETE("/:task_id", h.Delete)
	return r, h
}

func createTask(t *testing.T, r *gin.Engine, payload gin.H) string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/api/tasks", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	var data struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	return data.ID
}

func TestTaskCreateDefaults(t *testing.T) {
	r, h := taskEngine("u1")

	id := createTask(t, r, gin.H{"title": "Send proposal"})

	task, err := h.Tasks.FindByID(context.Background(), id, "u1")
	require.NoError(t, err)
	require.Equal(t, entity.PriorityMedium, task.Priority)
	require.Equal(t, entity.TaskTodo, task.Status)
	require.Nil(t, task.CompletedAt)
}

func TestTaskDoneStampsCompletedAt(t *testing.T) {
	r, h := taskEngine("u1")
	id := createTask(t, r, gin.H{"title": "Send proposal", "due_date": "2026-09-10"})

	w, body := doJSON(t, r, http.MethodPut, "/api/tasks/"+id, gin.H{"status": "done"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Task updated successfully", body.Message)

	task, err := h.Tasks.FindByID(context.Background(), id, "u1")
	require.NoError(t, err)
	require.NotNil(t, task.CompletedAt)

	// moving back to inprogress clears the stamp
	w, _ = doJSON(t, r, http.MethodPut, "/api/tasks/"+id, gin.H{"status": "inprogress"})
	require.Equal(t, http.StatusOK, w.Code)

	task, err = h.Tasks.FindByID(context.Background(), id, "u1")
	require.NoError(t, err)
	require.Nil(t, task.CompletedAt)
}

func TestTaskInvalidStatusRejected(t *testing.T) {
	r, _ := taskEngine("u1")
	id := createTask(t, r, gin.H{"title": "Send proposal"})

	w, body := doJSON(t, r, http.MethodPut, "/api/tasks/"+id, gin.H{"status": "finished"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Validation error", body.Error)
}

func TestTaskListSortedByDueDate(t *testing.T) {
	r, _ := taskEngine("u1")
	createTask(t, r, gin.H{"title": "later", "due_date": "2026-09-20"})
	createTask(t, r, gin.H{"title": "sooner", "due_date": "2026-09-05"})

	w, body := doJSON(t, r, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, body.Count)
	require.Equal(t, 2, *body.Count)

	var tasks []entity.Task
	require.NoError(t, json.Unmarshal(body.Data, &tasks))
	require.Equal(t, "sooner", tasks[0].Title)
}

func TestTaskNotFoundMessages(t *testing.T) {
	r, _ := taskEngine("u1")

	w, body := doJSON(t, r, http.MethodPut, "/api/tasks/nope", gin.H{"title": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Task not found or not updated", body.Error)

	w, body = doJSON(t, r, http.MethodDelete, "/api/tasks/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Task not found or already deleted", body.Error)
}
