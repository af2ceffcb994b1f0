package modules

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rihab-nikh/followUp-Backend/internal/container"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
)

type HealthModule struct {
	Version string
}

func NewHealthModule(version string) *HealthModule {
	return &HealthModule{Version: version}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	limiter := middleware.RateLimit(container.GetCounters(), cfg.DefaultRateLimit, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/health", limiter, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "healthy",
			"message": "FollowUp API is running",
			"version": m.Version,
		})
	})
}
