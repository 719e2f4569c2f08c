package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/dto"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/repositories"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/logger"
)

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) services.ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) CreateOrUpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.CreateProfileRequest) (*models.Profile, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, services.ErrValidation
	}

	// Role-conditional fields form a tagged union: a patient never keeps a
	// staff id, staff never keep a bed. Mismatched fields are rejected
	// rather than silently dropped.
	if role == models.RolePatient {
		if req.StaffID != "" || req.Department != "" {
			return nil, services.ErrValidation
		}
	} else {
		if req.BedNumber != "" || req.CaseNumber != "" {
			return nil, services.ErrValidation
		}
	}

	now := time.Now()

	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err == nil && existing != nil {
		existing.Role = role
		existing.Name = req.Name
		existing.BedNumber = strPtrOrNil(req.BedNumber)
		existing.CaseNumber = strPtrOrNil(req.CaseNumber)
		existing.StaffID = strPtrOrNil(req.StaffID)
		existing.Department = strPtrOrNil(req.Department)
		existing.LastActive = &now
		existing.UpdatedAt = now

		if err := s.profileRepo.Update(ctx, existing.ID, existing); err != nil {
			logger.ErrorContext(ctx, "Failed to update profile", "user_id", userID, "error", err)
			return nil, err
		}

		logger.InfoContext(ctx, "Profile updated", "profile_id", existing.ID, "role", role)
		return existing, nil
	}

	profile := &models.Profile{
		ID:         uuid.New(),
		UserID:     userID,
		Role:       role,
		Name:       req.Name,
		BedNumber:  strPtrOrNil(req.BedNumber),
		CaseNumber: strPtrOrNil(req.CaseNumber),
		StaffID:    strPtrOrNil(req.StaffID),
		Department: strPtrOrNil(req.Department),
		LastActive: &now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		logger.ErrorContext(ctx, "Failed to create profile", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Profile created", "profile_id", profile.ID, "role", role)
	return profile, nil
}

func (s *ProfileServiceImpl) GetCurrentProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, services.ErrProfileNotFound
	}
	return profile, nil
}

func (s *ProfileServiceImpl) TouchLastActive(ctx context.Context, userID uuid.UUID) error {
	if err := s.profileRepo.TouchLastActive(ctx, userID, time.Now()); err != nil {
		// a missing profile is not worth failing a heartbeat over
		logger.DebugContext(ctx, "Heartbeat skipped", "user_id", userID, "error", err)
	}
	return nil
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
