package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	repo "github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
	"github.com/Rihab-nikh/followUp-Backend/pkg/response"
)

// UserHandler exposes the admin-facing account directory.
type UserHandler struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewUserHandler(users repo.UserRepository, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

// List GET /api/users?role=admin (admin only)
func (h *UserHandler) List(c *gin.Context) {
	var (
		users []*entity.User
		err   error
	)
	if role := c.Query("role"); role != "" {
		users, err = h.Users.ListByRole(c.Request.Context(), role)
	} else {
		users, err = h.Users.List(c.Request.Context())
	}
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	response.List(c, users, len(users))
}

// Get GET /api/users/:user_id (admin or self)
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Users.GetByID(c.Request.Context(), c.Param("user_id"))
	if errors.Is(err, repo.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("get user failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	response.Success(c, http.StatusOK, u, "")
}
