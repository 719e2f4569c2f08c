package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/dto"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/logger"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/utils"
)

type LogoHandler struct {
	logoService services.LogoService
}

func NewLogoHandler(logoService services.LogoService) *LogoHandler {
	return &LogoHandler{
		logoService: logoService,
	}
}

// CreateUploadTarget hands out the presigned PUT URL for step one of the
// logo upload flow.
func (h *LogoHandler) CreateUploadTarget(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.LogoUploadTargetRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	target, err := h.logoService.CreateUploadTarget(ctx, user.ID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Upload target request failed", "user_id", user.ID, "error", err)
		return respondServiceError(c, err)
	}

	logger.InfoContext(ctx, "Upload target issued", "user_id", user.ID, "storage_key", target.StorageKey)

	return utils.SuccessResponse(c, target)
}

// Register finalizes step two: verify the uploaded blob and swap it in as
// the active logo.
func (h *LogoHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.RegisterLogoRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	logo, err := h.logoService.RegisterLogo(ctx, user.ID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Logo registration failed", "user_id", user.ID, "storage_key", req.StorageKey, "error", err)
		return respondServiceError(c, err)
	}

	logger.InfoContext(ctx, "Logo registered", "logo_id", logo.ID, "user_id", user.ID)

	return utils.CreatedResponse(c, logo)
}

// Active is public: every role (and the login page) renders the current
// logo. A 404 here means no logo has been registered yet.
func (h *LogoHandler) Active(c *fiber.Ctx) error {
	ctx := c.UserContext()

	logo, err := h.logoService.GetActiveLogo(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Active logo lookup failed", "error", err)
		return respondServiceError(c, err)
	}

	if logo == nil {
		return utils.NotFoundResponse(c, "No active logo")
	}

	return utils.SuccessResponse(c, logo)
}
