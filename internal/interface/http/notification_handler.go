package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	repo "github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
	"github.com/Rihab-nikh/followUp-Backend/pkg/response"
)

type NotificationHandler struct {
	Notifications repo.NotificationRepository
	Logger        *logrus.Logger
}

func NewNotificationHandler(notifications repo.NotificationRepository, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications, Logger: logger}
}

// List GET /api/notifications?unread_only=true
func (h *NotificationHandler) List(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	filter := repo.NotificationFilter{}
	if c.Query("unread_only") == "true" {
		unread := false
		filter.Read = &unread
	}
	notifs, err := h.Notifications.FindByOwner(c.Request.Context(), uid, filter)
	if err != nil {
		h.Logger.WithError(err).Error("list notifications failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	response.List(c, notifs, len(notifs))
}

// MarkRead PUT /api/notifications/:notification_id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	updated, err := h.Notifications.MarkRead(c.Request.Context(), c.Param("notification_id"), uid)
	if err != nil {
		h.Logger.WithError(err).Error("mark notification failed")
		response.Error(c, http.StatusInternalServerError, "Failed to mark notification as read")
		return
	}
	if !updated {
		response.Error(c, http.StatusNotFound, "Notification not found")
		return
	}
	response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllRead PUT /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	if _, err := h.Notifications.MarkAllRead(c.Request.Context(), uid); err != nil {
		h.Logger.WithError(err).Error("mark all notifications failed")
		response.Error(c, http.StatusInternalServerError, "Failed to mark all notifications as read")
		return
	}
	response.Success(c, http.StatusOK, nil, "All notifications marked as read")
}

// Delete DELETE /api/notifications/:notification_id
func (h *NotificationHandler) Delete(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	deleted, err := h.Notifications.Delete(c.Request.Context(), c.Param("notification_id"), uid)
	if err != nil {
		h.Logger.WithError(err).Error("delete notification failed")
		response.Error(c, http.StatusInternalServerError, "Failed to delete notification")
		return
	}
	if !deleted {
		response.Error(c, http.StatusNotFound, "Notification not found")
		return
	}
	response.Success(c, http.StatusOK, nil, "Notification deleted successfully")
}
