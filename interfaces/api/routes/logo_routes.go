package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/interfaces/api/handlers"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/interfaces/api/middleware"
)

func SetupLogoRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	logos := api.Group("/logos")
	// The active logo is rendered on the login page, before any token exists.
	logos.Get("/active", h.LogoHandler.Active)
	logos.Post("/upload-url", middleware.Protected(jwtSecret), h.LogoHandler.CreateUploadTarget)
	logos.Post("/register", middleware.Protected(jwtSecret), h.LogoHandler.Register)
}
