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

type MeetingHandler struct {
	Meetings      repo.MeetingRepository
	Notifications repo.NotificationRepository
	Logger        *logrus.Logger
}

func NewMeetingHandler(meetings repo.MeetingRepository, notifications repo.NotificationRepository, logger *logrus.Logger) *MeetingHandler {
	return &MeetingHandler{Meetings: meetings, Notifications: notifications, Logger: logger}
}

// List GET /api/meetings
func (h *MeetingHandler) List(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	filter := repo.MeetingFilter{
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}
	meetings, err := h.Meetings.FindByOwner(c.Request.Context(), uid, filter)
	if err != nil {
		h.Logger.WithError(err).Error("list meetings failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch meetings")
		return
	}
	response.List(c, meetings, len(meetings))
}

// Get GET /api/meetings/:meeting_id
func (h *MeetingHandler) Get(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	m, err := h.Meetings.FindByID(c.Request.Context(), c.Param("meeting_id"), uid)
	if errors.Is(err, repo.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Meeting not found")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("get meeting failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch meeting")
		return
	}
	response.Success(c, http.StatusOK, m, "")
}

type createMeetingRequest struct {
	Company        string   `json:"company" binding:"required"`
	Contact        string   `json:"contact" binding:"required"`
	Subject        string   `json:"subject" binding:"required"`
	Description    string   `json:"description"`
	Date           string   `json:"date" binding:"required,dateymd"`
	Time           string   `json:"time" binding:"required"`
	Duration       int      `json:"duration" binding:"omitempty,gte=1"`
	Location       string   `json:"location"`
	Status         string   `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
	Priority       string   `json:"priority" binding:"omitempty,oneof=high medium low"`
	Notes          string   `json:"notes"`
	Attendees      []string `json:"attendees"`
	Tags           []string `json:"tags"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email" binding:"omitempty,email"`
	CompanyAddress string   `json:"company_address"`
}

// Create POST /api/meetings
func (h *MeetingHandler) Create(c *gin.Context) {
	var req createMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	uid := middleware.CurrentUserID(c)

	m := &entity.Meeting{
		UserID:         uid,
		Company:        req.Company,
		Contact:        req.Contact,
		Subject:        req.Subject,
		Description:    req.Description,
		Date:           req.Date,
		Time:           req.Time,
		Duration:       req.Duration,
		Location:       req.Location,
		Status:         req.Status,
		Priority:       req.Priority,
		Notes:          req.Notes,
		Attendees:      req.Attendees,
		Tags:           req.Tags,
		Phone:          req.Phone,
		Email:          req.Email,
		CompanyAddress: req.CompanyAddress,
	}
	if m.Duration == 0 {
		m.Duration = 60
	}
	if m.Location == "" {
		m.Location = "Virtual Meeting"
	}
	if m.Status == "" {
		m.Status = entity.MeetingScheduled
	}
	if m.Priority == "" {
		m.Priority = entity.PriorityMedium
	}

	id, err := h.Meetings.Create(c.Request.Context(), m)
	if err != nil {
		h.Logger.WithError(err).Error("create meeting failed")
		response.Error(c, http.StatusInternalServerError, "Failed to create meeting")
		return
	}

	if _, err := h.Notifications.Create(c.Request.Context(), entity.MeetingCreated(uid, m)); err != nil {
		h.Logger.WithError(err).WithField("meeting_id", id).Warn("meeting notification failed")
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id}, "Meeting created successfully")
}

type updateMeetingRequest struct {
	Company        *string  `json:"company"`
	Contact        *string  `json:"contact"`
	Subject        *string  `json:"subject"`
	Description    *string  `json:"description"`
	Date           *string  `json:"date" binding:"omitempty,dateymd"`
	Time           *string  `json:"time"`
	Duration       *int     `json:"duration" binding:"omitempty,gte=1"`
	Location       *string  `json:"location"`
	Status         *string  `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
	Priority       *string  `json:"priority" binding:"omitempty,oneof=high medium low"`
	Notes          *string  `json:"notes"`
	Attendees      []string `json:"attendees"`
	Tags           []string `json:"tags"`
	Phone          *string  `json:"phone"`
	Email          *string  `json:"email" binding:"omitempty,email"`
	CompanyAddress *string  `json:"company_address"`
}

// Update PUT /api/meetings/:meeting_id
func (h *MeetingHandler) Update(c *gin.Context) {
	var req updateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	uid := middleware.CurrentUserID(c)

	patch := repo.MeetingPatch{
		Company:        req.Company,
		Contact:        req.Contact,
		Subject:        req.Subject,
		Description:    req.Description,
		Date:           req.Date,
		Time:           req.Time,
		Duration:       req.Duration,
		Location:       req.Location,
		Status:         req.Status,
		Priority:       req.Priority,
		Notes:          req.Notes,
		Attendees:      req.Attendees,
		Tags:           req.Tags,
		Phone:          req.Phone,
		Email:          req.Email,
		CompanyAddress: req.CompanyAddress,
	}
	updated, err := h.Meetings.Update(c.Request.Context(), c.Param("meeting_id"), uid, patch)
	if err != nil {
		h.Logger.WithError(err).Error("update meeting failed")
		response.Error(c, http.StatusInternalServerError, "Failed to update meeting")
		return
	}
	if !updated {
		response.Error(c, http.StatusNotFound, "Meeting not found or not updated")
		return
	}
	response.Success(c, http.StatusOK, nil, "Meeting updated successfully")
}

// Delete DELETE /api/meetings/:meeting_id
func (h *MeetingHandler) Delete(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	deleted, err := h.Meetings.Delete(c.Request.Context(), c.Param("meeting_id"), uid)
	if err != nil {
		h.Logger.WithError(err).Error("delete meeting failed")
		response.Error(c, http.StatusInternalServerError, "Failed to delete meeting")
		return
	}
	if !deleted {
		response.Error(c, http.StatusNotFound, "Meeting not found or already deleted")
		return
	}
	response.Success(c, http.StatusOK, nil, "Meeting deleted successfully")
}
