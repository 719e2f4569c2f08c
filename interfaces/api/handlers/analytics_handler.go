package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/logger"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/utils"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Overview returns the supervisor dashboard rollup.
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	analytics, err := h.analyticsService.GetAnalytics(ctx, user.ID)
	if err != nil {
		logger.WarnContext(ctx, "Analytics request rejected", "user_id", user.ID, "error", err)
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, analytics)
}
