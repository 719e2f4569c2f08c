package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/dto"
)

type AnalyticsService interface {
	// GetAnalytics recomputes the full rollup from the task set on every
	// call. Supervisor only.
	GetAnalytics(ctx context.Context, userID uuid.UUID) (*dto.AnalyticsResponse, error)
}
