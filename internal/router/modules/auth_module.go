package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rihab-nikh/followUp-Backend/internal/container"
	handlers "github.com/Rihab-nikh/followUp-Backend/internal/interface/http"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	limiter := middleware.RateLimit(container.GetCounters(), cfg.AuthRateLimit, time.Minute, middleware.KeyByIPAndPath(), nil)

	auth := rg.Group("/auth")
	auth.Use(limiter)
	{
		auth.POST("/register", m.Handler.Register)
		auth.POST("/login", m.Handler.Login)
		auth.POST("/refresh", m.Handler.Refresh)
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.Me)
		auth.PUT("/me", m.Handler.UpdateProfile)
		auth.PUT("/password", m.Handler.ChangePassword)
		auth.POST("/forgot-password", m.Handler.ForgotPassword)
		auth.POST("/reset-password", m.Handler.ResetPassword)
	}
}
