package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rihab-nikh/followUp-Backend/internal/container"
	handlers "github.com/Rihab-nikh/followUp-Backend/internal/interface/http"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
)

type MeetingModule struct {
	Handler *handlers.MeetingHandler
}

func NewMeetingModule(h *handlers.MeetingHandler) *MeetingModule {
	return &MeetingModule{Handler: h}
}

func (m *MeetingModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	limiter := middleware.RateLimit(container.GetCounters(), cfg.DefaultRateLimit, time.Minute, middleware.KeyByIPAndPath(), nil)

	meetings := rg.Group("/meetings")
	meetings.Use(limiter, middleware.RequireAuth())
	{
		meetings.GET("", m.Handler.List)
		meetings.POST("", m.Handler.Create)
		meetings.GET("/:meeting_id", m.Handler.Get)
		meetings.PUT("/:meeting_id", m.Handler.Update)
		meetings.DELETE("/:meeting_id", m.Handler.Delete)
	}
}
