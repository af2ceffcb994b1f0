package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rihab-nikh/followUp-Backend/internal/container"
	handlers "github.com/Rihab-nikh/followUp-Backend/internal/interface/http"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
)

type DashboardModule struct {
	Handler *handlers.DashboardHandler
}

func NewDashboardModule(h *handlers.DashboardHandler) *DashboardModule {
	return &DashboardModule{Handler: h}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	limiter := middleware.RateLimit(container.GetCounters(), cfg.DefaultRateLimit, time.Minute, middleware.KeyByIPAndPath(), nil)

	dashboard := rg.Group("/dashboard")
	dashboard.Use(limiter, middleware.RequireAuth())
	{
		dashboard.GET("/kpis", m.Handler.KPIs)
		dashboard.GET("/activity", m.Handler.Activity)
		dashboard.GET("/chart", m.Handler.Chart)
	}
}
