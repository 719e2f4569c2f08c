package handlers

import (
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService      services.UserService
	ProfileService   services.ProfileService
	TaskService      services.TaskService
	AnalyticsService services.AnalyticsService
	LogoService      services.LogoService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler      *AuthHandler
	ProfileHandler   *ProfileHandler
	TaskHandler      *TaskHandler
	AnalyticsHandler *AnalyticsHandler
	LogoHandler      *LogoHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:      NewAuthHandler(services.UserService),
		ProfileHandler:   NewProfileHandler(services.ProfileService),
		TaskHandler:      NewTaskHandler(services.TaskService),
		AnalyticsHandler: NewAnalyticsHandler(services.AnalyticsService),
		LogoHandler:      NewLogoHandler(services.LogoService),
	}
}
