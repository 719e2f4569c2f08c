package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/interfaces/api/handlers"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/interfaces/api/middleware"
)

func SetupAnalyticsRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	analytics := api.Group("/analytics")
	analytics.Use(middleware.Protected(jwtSecret))
	analytics.Get("/", h.AnalyticsHandler.Overview)
}
