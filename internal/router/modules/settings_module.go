package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rihab-nikh/followUp-Backend/internal/container"
	handlers "github.com/Rihab-nikh/followUp-Backend/internal/interface/http"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
)

type SettingsModule struct {
	Handler *handlers.SettingsHandler
}

func NewSettingsModule(h *handlers.SettingsHandler) *SettingsModule {
	return &SettingsModule{Handler: h}
}

func (m *SettingsModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	limiter := middleware.RateLimit(container.GetCounters(), cfg.DefaultRateLimit, time.Minute, middleware.KeyByIPAndPath(), nil)

	settings := rg.Group("/settings")
	settings.Use(limiter, middleware.RequireAuth())
	{
		settings.GET("", m.Handler.Get)
		settings.PUT("", m.Handler.Update)
	}
}
