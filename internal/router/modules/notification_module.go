package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rihab-nikh/followUp-Backend/internal/container"
	handlers "github.com/Rihab-nikh/followUp-Backend/internal/interface/http"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
)

type NotificationModule struct {
	Handler *handlers.NotificationHandler
}

func NewNotificationModule(h *handlers.NotificationHandler) *NotificationModule {
	return &NotificationModule{Handler: h}
}

func (m *NotificationModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	limiter := middleware.RateLimit(container.GetCounters(), cfg.DefaultRateLimit, time.Minute, middleware.KeyByIPAndPath(), nil)

	notifications := rg.Group("/notifications")
	notifications.Use(limiter, middleware.RequireAuth())
	{
		notifications.GET("", m.Handler.List)
		notifications.PUT("/read-all", m.Handler.MarkAllRead)
		notifications.PUT("/:notification_id/read", m.Handler.MarkRead)
		notifications.DELETE("/:notification_id", m.Handler.Delete)
	}
}
