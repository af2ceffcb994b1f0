package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rihab-nikh/followUp-Backend/internal/container"
	handlers "github.com/Rihab-nikh/followUp-Backend/internal/interface/http"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
)

type AIModule struct {
	Handler *handlers.AIHandler
}

func NewAIModule(h *handlers.AIHandler) *AIModule {
	return &AIModule{Handler: h}
}

func (m *AIModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	limiter := middleware.RateLimit(container.GetCounters(), cfg.AIRateLimit, time.Minute, middleware.KeyByIPAndPath(), nil)

	ai := rg.Group("/ai")
	ai.Use(limiter, middleware.RequireAuth())
	{
		ai.POST("/chat", m.Handler.Chat)
		ai.GET("/chat/history", m.Handler.History)
	}
}
