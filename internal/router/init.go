package router

import (
	"github.com/Rihab-nikh/followUp-Backend/internal/application"
	"github.com/Rihab-nikh/followUp-Backend/internal/container"
	handlers "github.com/Rihab-nikh/followUp-Backend/internal/interface/http"
	"github.com/Rihab-nikh/followUp-Backend/internal/router/modules"
)

const apiVersion = "1.0.0"

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	repos := container.GetRepos()

	authSvc := application.NewAuthService(
		repos.Users,
		container.GetJWT(),
		container.GetRedis(),
		container.GetRabbitPub(),
		logger,
		cfg.ResetPasswordURL,
		cfg.ResetTokenTTL,
	)
	dashboardSvc := application.NewDashboardService(
		repos.Meetings,
		repos.Tasks,
		repos.Notifications,
		repos.KPIs,
		logger,
	)
	aiSvc := application.NewAIService(repos.Chats, container.GetCompleter(), logger)

	r.Add(modules.NewHealthModule(apiVersion))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, repos.Users, logger)))
	r.Add(modules.NewMeetingModule(handlers.NewMeetingHandler(repos.Meetings, repos.Notifications, logger)))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(repos.Tasks, repos.Notifications, logger)))
	r.Add(modules.NewNotificationModule(handlers.NewNotificationHandler(repos.Notifications, logger)))
	r.Add(modules.NewAIModule(handlers.NewAIHandler(aiSvc, logger)))
	r.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(dashboardSvc, logger)))
	r.Add(modules.NewSettingsModule(handlers.NewSettingsHandler(repos.Users, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(repos.Users, logger)))
}
