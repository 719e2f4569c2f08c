package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/utils"
)

// respondServiceError maps the service failure taxonomy onto HTTP
// responses. Checks run in specificity order so a wrapped sentinel still
// lands on the right status.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		return utils.UnauthorizedResponse(c, "")
	case errors.Is(err, services.ErrProfileNotFound):
		return utils.ForbiddenResponse(c, "Complete your profile before using this endpoint")
	case errors.Is(err, services.ErrNotAuthorized):
		return utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, "")
	case errors.Is(err, services.ErrInvalidState):
		return utils.InvalidStateResponse(c, err.Error())
	case errors.Is(err, services.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil)
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
