package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/dto"
)

// LogoService implements the two-step branding upload: request a presigned
// target, upload out-of-band, then register the key. Registration swaps
// the active record.
type LogoService interface {
	CreateUploadTarget(ctx context.Context, userID uuid.UUID, req *dto.LogoUploadTargetRequest) (*dto.LogoUploadTargetResponse, error)
	RegisterLogo(ctx context.Context, userID uuid.UUID, req *dto.RegisterLogoRequest) (*dto.LogoResponse, error)
	// GetActiveLogo returns (nil, nil) when no logo is registered.
	GetActiveLogo(ctx context.Context) (*dto.LogoResponse, error)
}
