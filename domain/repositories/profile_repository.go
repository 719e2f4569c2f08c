package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, id uuid.UUID, profile *models.Profile) error
	TouchLastActive(ctx context.Context, userID uuid.UUID, at time.Time) error
}
