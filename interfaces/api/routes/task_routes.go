package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/interfaces/api/handlers"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.Protected(jwtSecret))
	tasks.Post("/", h.TaskHandler.Create)
	tasks.Get("/", h.TaskHandler.List)
	tasks.Post("/:id/accept", h.TaskHandler.Accept)
	tasks.Post("/:id/assign", h.TaskHandler.Assign)
	tasks.Patch("/:id/status", h.TaskHandler.UpdateStatus)
	tasks.Patch("/:id/notes", h.TaskHandler.UpdateNotes)
	tasks.Delete("/:id", h.TaskHandler.Delete)
}
