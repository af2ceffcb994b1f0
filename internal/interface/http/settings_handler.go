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

type SettingsHandler struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewSettingsHandler(users repo.UserRepository, logger *logrus.Logger) *SettingsHandler {
	return &SettingsHandler{Users: users, Logger: logger}
}

// Get GET /api/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	uid := middleware.CurrentUserID(c)
	u, err := h.Users.GetByID(c.Request.Context(), uid)
	if errors.Is(err, repo.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("get settings failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"email":           u.Email,
		"full_name":       u.FullName,
		"avatar_initials": u.AvatarInitials,
		"preferences":     u.Preferences,
	}, "")
}

type updateSettingsRequest struct {
	FullName    *string                `json:"full_name"`
	Preferences map[string]interface{} `json:"preferences"`
}

// Update PUT /api/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	uid := middleware.CurrentUserID(c)

	patch := repo.UserPatch{
		FullName:    req.FullName,
		Preferences: req.Preferences,
	}
	if req.FullName != nil {
		initials := entity.AvatarInitialsFor(*req.FullName)
		patch.AvatarInitials = &initials
	}
	updated, err := h.Users.Update(c.Request.Context(), uid, patch)
	if err != nil {
		h.Logger.WithError(err).Error("update settings failed")
		response.Error(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}
	if !updated {
		response.Error(c, http.StatusBadRequest, "Failed to update settings")
		return
	}
	response.Success(c, http.StatusOK, nil, "Settings updated successfully")
}
