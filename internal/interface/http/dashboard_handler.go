package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Rihab-nikh/followUp-Backend/internal/application"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
	"github.com/Rihab-nikh/followUp-Backend/pkg/response"
)

type DashboardHandler struct {
	Svc    *application.DashboardService
	Logger *logrus.Logger
}

func NewDashboardHandler(svc *application.DashboardService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Logger: logger}
}

// KPIs GET /api/dashboard/kpis
func (h *DashboardHandler) KPIs(c *gin.Context) {
	kpis, err := h.Svc.KPIs(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		h.Logger.WithError(err).Error("dashboard kpis failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}
	response.Success(c, http.StatusOK, kpis, "")
}

// Activity GET /api/dashboard/activity
func (h *DashboardHandler) Activity(c *gin.Context) {
	activities, err := h.Svc.RecentActivity(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		h.Logger.WithError(err).Error("dashboard activity failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch recent activity")
		return
	}
	response.Success(c, http.StatusOK, activities, "")
}

// Chart GET /api/dashboard/chart?days=7
func (h *DashboardHandler) Chart(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	if days < 1 || days > 90 {
		days = 7
	}
	points, err := h.Svc.Chart(c.Request.Context(), middleware.CurrentUserID(c), days)
	if err != nil {
		h.Logger.WithError(err).Error("dashboard chart failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch chart data")
		return
	}
	response.Success(c, http.StatusOK, points, "")
}
