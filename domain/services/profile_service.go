package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/dto"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
)

type ProfileService interface {
	// CreateOrUpdateProfile upserts the caller's single profile record.
	CreateOrUpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.CreateProfileRequest) (*models.Profile, error)
	// GetCurrentProfile returns ErrProfileNotFound when the user has not
	// completed onboarding.
	GetCurrentProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	// TouchLastActive records a liveness heartbeat. A missing profile is
	// not an error here; the touch is simply dropped.
	TouchLastActive(ctx context.Context, userID uuid.UUID) error
}
