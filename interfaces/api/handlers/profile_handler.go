package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/dto"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/logger"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/utils"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// CreateOrUpdate upserts the caller's profile. Picking a role is the last
// onboarding step, so this is also where a user switches role.
func (h *ProfileHandler) CreateOrUpdate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	profile, err := h.profileService.CreateOrUpdateProfile(ctx, user.ID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Profile upsert failed", "user_id", user.ID, "error", err)
		return respondServiceError(c, err)
	}

	logger.InfoContext(ctx, "Profile saved", "user_id", user.ID, "role", profile.Role)

	return utils.SuccessResponse(c, dto.ProfileToProfileResponse(profile))
}

func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.profileService.GetCurrentProfile(ctx, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return utils.NotFoundResponse(c, "Profile not found")
		}
		logger.ErrorContext(ctx, "Profile lookup failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.ProfileToProfileResponse(profile))
}

// Heartbeat refreshes the caller's lastActive marker. It never fails the
// client over a missing profile.
func (h *ProfileHandler) Heartbeat(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.profileService.TouchLastActive(ctx, user.ID); err != nil {
		logger.WarnContext(ctx, "Heartbeat failed", "user_id", user.ID, "error", err)
	}

	return utils.NoContentResponse(c)
}
