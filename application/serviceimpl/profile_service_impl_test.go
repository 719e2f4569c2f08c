package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/dto"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
)

func TestCreateProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)
	userID := uuid.New()

	profile, err := svc.CreateOrUpdateProfile(context.Background(), userID, &dto.CreateProfileRequest{
		Role:       "patient",
		Name:       "Somchai P.",
		BedNumber:  "B-204",
		CaseNumber: "HN-5521",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RolePatient, profile.Role)
	assert.Equal(t, "B-204", profile.Bed())
	assert.Equal(t, "HN-5521", profile.Case())
	assert.Nil(t, profile.StaffID)
	require.NotNil(t, profile.LastActive)
}

func TestUpdateProfileKeepsIdentity(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreateOrUpdateProfile(ctx, userID, &dto.CreateProfileRequest{
		Role:       "patient",
		Name:       "Somchai P.",
		BedNumber:  "B-204",
		CaseNumber: "HN-5521",
	})
	require.NoError(t, err)

	// Switching role to staff replaces the role-conditional fields.
	updated, err := svc.CreateOrUpdateProfile(ctx, userID, &dto.CreateProfileRequest{
		Role:       "porter",
		Name:       "Somchai P.",
		StaffID:    "PT-88",
		Department: "Logistics",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, models.RolePorter, updated.Role)
	assert.Nil(t, updated.BedNumber)
	assert.Nil(t, updated.CaseNumber)
	require.NotNil(t, updated.StaffID)
	assert.Equal(t, "PT-88", *updated.StaffID)
}

func TestProfileRejectsCrossRoleFields(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)
	ctx := context.Background()

	_, err := svc.CreateOrUpdateProfile(ctx, uuid.New(), &dto.CreateProfileRequest{
		Role:    "patient",
		Name:    "Somchai P.",
		StaffID: "PT-88",
	})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.CreateOrUpdateProfile(ctx, uuid.New(), &dto.CreateProfileRequest{
		Role:      "nurse",
		Name:      "Nurse Anong",
		BedNumber: "B-204",
	})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestGetCurrentProfileMissing(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	_, err := svc.GetCurrentProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, services.ErrProfileNotFound)
}

func TestTouchLastActive(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.CreateOrUpdateProfile(ctx, userID, &dto.CreateProfileRequest{
		Role: "nurse",
		Name: "Nurse Anong",
	})
	require.NoError(t, err)

	before := *repo.profiles[userID].LastActive

	require.NoError(t, svc.TouchLastActive(ctx, userID))
	assert.False(t, repo.profiles[userID].LastActive.Before(before))

	// A heartbeat from a user without a profile is dropped, not an error.
	assert.NoError(t, svc.TouchLastActive(ctx, uuid.New()))
}
