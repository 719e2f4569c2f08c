package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/dto"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/utils"
)

const testJWTSecret = "unit-test-secret"

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testJWTSecret)
	ctx := context.Background()

	token, user, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "anong@hospital.test",
		Name:     "Nurse Anong",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, user.IsActive)
	// the stored password must be a hash, never the plaintext
	assert.NotEqual(t, "s3cret-pass", user.Password)

	claims, err := utils.ValidateToken(token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, "anong@hospital.test", claims.Email)

	_, loggedIn, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "anong@hospital.test",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testJWTSecret)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "anong@hospital.test",
		Name:     "Nurse Anong",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, &dto.RegisterRequest{
		Email:    "anong@hospital.test",
		Name:     "Someone Else",
		Password: "other-pass",
	})
	assert.Error(t, err)
}

func TestLoginFailures(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testJWTSecret)
	ctx := context.Background()

	_, user, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "anong@hospital.test",
		Name:     "Nurse Anong",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "anong@hospital.test", Password: "wrong"})
	assert.Error(t, err)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@hospital.test", Password: "s3cret-pass"})
	assert.Error(t, err)

	user.IsActive = false
	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "anong@hospital.test", Password: "s3cret-pass"})
	assert.Error(t, err)
}

func TestGetUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testJWTSecret)
	ctx := context.Background()

	_, user, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "anong@hospital.test",
		Name:     "Nurse Anong",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, services.ErrNotFound)
}
