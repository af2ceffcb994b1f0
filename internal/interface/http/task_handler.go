package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	repo "github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
	"github.com/Rihab-nikh/followUp-Backend/pkg/response"
	"github.com/Rihab-nikh/followUp-Backend/pkg/validation"
)

type TaskHandler struct {
	Tasks         repo.TaskRepository
	Notifications repo.NotificationRepository
	Logger        *logrus.Logger
}

func NewTaskHandler(tasks repo.TaskRepository, notifications repo.NotificationRepository, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Tasks: tasks, Notifications: notifications, Logger: logger}
}

// List GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	filter := repo.TaskFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Assignee: c.Query("assignee"),
	}
	tasks, err := h.Tasks.FindByOwner(c.Request.Context(), uid, filter)
	if err != nil {
		h.Logger.WithError(err).Error("list tasks failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}
	response.List(c, tasks, len(tasks))
}

// Get GET /api/tasks/:task_id
func (h *TaskHandler) Get(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	t, err := h.Tasks.FindByID(c.Request.Context(), c.Param("task_id"), uid)
	if errors.Is(err, repo.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("get task failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch task")
		return
	}
	response.Success(c, http.StatusOK, t, "")
}

type createTaskRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	MeetingID      string   `json:"meeting_id"`
	Assignee       string   `json:"assignee"`
	AssigneeUserID string   `json:"assignee_user_id"`
	DueDate        string   `json:"due_date" binding:"omitempty,dateymd"`
	Priority       string   `json:"priority" binding:"omitempty,oneof=high medium low"`
	Status         string   `json:"status" binding:"omitempty,oneof=todo inprogress done"`
	Tags           []string `json:"tags"`
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	uid := middleware.CurrentUserID(c)

	t := &entity.Task{
		UserID:         uid,
		Title:          req.Title,
		Description:    req.Description,
		MeetingID:      req.MeetingID,
		Assignee:       req.Assignee,
		AssigneeUserID: req.AssigneeUserID,
		DueDate:        req.DueDate,
		Priority:       req.Priority,
		Status:         req.Status,
		Tags:           req.Tags,
	}
	if t.Priority == "" {
		t.Priority = entity.PriorityMedium
	}
	if t.Status == "" {
		t.Status = entity.TaskTodo
	}

	id, err := h.Tasks.Create(c.Request.Context(), t)
	if err != nil {
		h.Logger.WithError(err).Error("create task failed")
		response.Error(c, http.StatusInternalServerError, "Failed to create task")
		return
	}

	if _, err := h.Notifications.Create(c.Request.Context(), entity.TaskCreated(uid, t)); err != nil {
		h.Logger.WithError(err).WithField("task_id", id).Warn("task notification failed")
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id}, "Task created successfully")
}

type updateTaskRequest struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	MeetingID      *string  `json:"meeting_id"`
	Assignee       *string  `json:"assignee"`
	AssigneeUserID *string  `json:"assignee_user_id"`
	DueDate        *string  `json:"due_date" binding:"omitempty,dateymd"`
	Priority       *string  `json:"priority" binding:"omitempty,oneof=high medium low"`
	Status         *string  `json:"status" binding:"omitempty,oneof=todo inprogress done"`
	Tags           []string `json:"tags"`
}

// Update PUT /api/tasks/:task_id
func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	uid := middleware.CurrentUserID(c)

	patch := repo.TaskPatch{
		Title:          req.Title,
		Description:    req.Description,
		MeetingID:      req.MeetingID,
		Assignee:       req.Assignee,
		AssigneeUserID: req.AssigneeUserID,
		DueDate:        req.DueDate,
		Priority:       req.Priority,
		Status:         req.Status,
		Tags:           req.Tags,
	}
	updated, err := h.Tasks.Update(c.Request.Context(), c.Param("task_id"), uid, patch)
	if err != nil {
		h.Logger.WithError(err).Error("update task failed")
		response.Error(c, http.StatusInternalServerError, "Failed to update task")
		return
	}
	if !updated {
		response.Error(c, http.StatusNotFound, "Task not found or not updated")
		return
	}
	response.Success(c, http.StatusOK, nil, "Task updated successfully")
}

// Delete DELETE /api/tasks/:task_id
func (h *TaskHandler) Delete(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	deleted, err := h.Tasks.Delete(c.Request.Context(), c.Param("task_id"), uid)
	if err != nil {
		h.Logger.WithError(err).Error("delete task failed")
		response.Error(c, http.StatusInternalServerError, "Failed to delete task")
		return
	}
	if !deleted {
		response.Error(c, http.StatusNotFound, "Task not found or already deleted")
		return
	}
	response.Success(c, http.StatusOK, nil, "Task deleted successfully")
}
