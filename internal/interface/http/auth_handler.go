package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Rihab-nikh/followUp-Backend/internal/application"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	repo "github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
	"github.com/Rihab-nikh/followUp-Backend/pkg/helpers"
	"github.com/Rihab-nikh/followUp-Backend/pkg/response"
	"github.com/Rihab-nikh/followUp-Backend/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, users repo.UserRepository, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Users: users, Logger: logger}
}

type tokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func newTokenSet(pair application.TokenPair) tokenSet {
	return tokenSet{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	if ok, msg := helpers.ValidatePasswordStrength(req.Password); !ok {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if errors.Is(err, application.ErrEmailTaken) {
		response.Error(c, http.StatusConflict, "User already exists with this email")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("registration failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	pair, err := h.Svc.IssueTokens(u.ID)
	if err != nil {
		h.Logger.WithError(err).Error("issue tokens failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.SuccessWithTokens(c, http.StatusCreated, gin.H{
		"user_id":         u.ID,
		"email":           u.Email,
		"full_name":       u.FullName,
		"avatar_initials": u.AvatarInitials,
		"preferences":     u.Preferences,
	}, newTokenSet(pair), "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	u, pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, application.ErrInvalidCredentials) {
		response.Error(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.SuccessWithTokens(c, http.StatusOK, gin.H{
		"user_id":         u.ID,
		"email":           u.Email,
		"full_name":       u.FullName,
		"avatar_initials": u.AvatarInitials,
		"role":            u.Role,
		"preferences":     u.Preferences,
		"last_login":      u.LastLogin,
	}, newTokenSet(pair), "Login successful")
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh POST /api/auth/refresh
// Returns a new access token; the refresh token is reused, not rotated.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		response.Error(c, http.StatusBadRequest, "Refresh token required")
		return
	}

	access, _, err := h.Svc.Refresh(c.Request.Context(), req.RefreshToken)
	if errors.Is(err, application.ErrInvalidCredentials) {
		response.Error(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}
	if errors.Is(err, application.ErrUserNotFound) {
		response.Error(c, http.StatusUnauthorized, "User not found")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("token refresh failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, response.APIResponse{
		Success: true,
		Message: "Token refreshed successfully",
		Tokens: tokenSet{
			AccessToken:  access,
			RefreshToken: req.RefreshToken,
			TokenType:    "Bearer",
		},
	})
}

// Logout POST /api/auth/logout
// Tokens are stateless; discarding them is the client's job.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	response.Success(c, http.StatusOK, gin.H{
		"user_id":         u.ID,
		"email":           u.Email,
		"full_name":       u.FullName,
		"role":            u.Role,
		"avatar_initials": u.AvatarInitials,
		"preferences":     u.Preferences,
		"created_at":      u.CreatedAt,
		"updated_at":      u.UpdatedAt,
		"last_login":      u.LastLogin,
	}, "")
}

type updateProfileRequest struct {
	Email       *string                `json:"email" binding:"omitempty,email"`
	FullName    *string                `json:"full_name"`
	Preferences map[string]interface{} `json:"preferences"`
}

// UpdateProfile PUT /api/auth/me
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	uid := middleware.CurrentUserID(c)

	patch := repo.UserPatch{
		Email:       req.Email,
		FullName:    req.FullName,
		Preferences: req.Preferences,
	}
	if req.FullName != nil {
		initials := entity.AvatarInitialsFor(*req.FullName)
		patch.AvatarInitials = &initials
	}
	if _, err := h.Users.Update(c.Request.Context(), uid, patch); err != nil {
		h.Logger.WithError(err).Error("update profile failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	u, err := h.Users.GetByID(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user_id":         u.ID,
		"email":           u.Email,
		"full_name":       u.FullName,
		"avatar_initials": u.AvatarInitials,
		"preferences":     u.Preferences,
		"updated_at":      u.UpdatedAt,
	}, "Profile updated successfully")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword PUT /api/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	if ok, msg := helpers.ValidatePasswordStrength(req.NewPassword); !ok {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	err := h.Svc.ChangePassword(c.Request.Context(), middleware.CurrentUserID(c), req.CurrentPassword, req.NewPassword)
	if errors.Is(err, application.ErrWrongPassword) {
		response.Error(c, http.StatusBadRequest, "Current password is incorrect")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("change password failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword POST /api/auth/forgot-password
// Always answers 200 so callers cannot probe which emails exist.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	if err := h.Svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.Logger.WithError(err).Error("forgot password failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, nil, "If the email exists, a reset link has been sent")
}

type resetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetPassword POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	if ok, msg := helpers.ValidatePasswordStrength(req.NewPassword); !ok {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	err := h.Svc.ResetPassword(c.Request.Context(), req.Token, req.NewPassword)
	if errors.Is(err, application.ErrInvalidResetToken) {
		response.Error(c, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("reset password failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, nil, "Password has been reset")
}
