package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/interfaces/api/handlers"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/interfaces/api/middleware"
)

func SetupProfileRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	profiles := api.Group("/profiles")
	profiles.Use(middleware.Protected(jwtSecret))
	profiles.Post("/", h.ProfileHandler.CreateOrUpdate)
	profiles.Get("/me", h.ProfileHandler.Me)
	profiles.Post("/heartbeat", h.ProfileHandler.Heartbeat)
}
