package impl

import (
	"context"
	"testing"
	"time"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	mockRepo "foamstock/internal/mocks/repository"
	mockService "foamstock/internal/mocks/service"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service        usecase.AuthUsecase
	userRepo       *mockRepo.MockUserRepository
	passwordHasher *mockService.MockPasswordHasher
	tokenService   *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	passwordHasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:       userRepo,
		PasswordHasher: passwordHasher,
		TokenService:   tokenService,
	})

	return authServiceFixtures{
		service:        service,
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenService:   tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "owner@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.passwordHasher.EXPECT().
		Hash("s3cret-pass").
		Return("$2a$10$hash", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), entity.RoleBusinessOwner.String()).
		Return("signed-token", nil)

	result, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:     "owner@example.com",
		Password:  "s3cret-pass",
		FirstName: "Pat",
		LastName:  "Owner",
		Role:      entity.RoleBusinessOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.AccessToken)
	assert.Equal(t, "$2a$10$hash", result.User.PasswordHash)
	assert.True(t, result.User.Permissions.ViewProfits)
	assert.True(t, result.User.IsActive)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "taken@example.com").
		Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "whatever",
		Role:     entity.RoleSalesperson,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleSalesManager,
		IsActive:     true,
	}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.passwordHasher.EXPECT().Check("right-password", user.PasswordHash).Return(true)
	fx.userRepo.EXPECT().UpdateLastLogin(ctx, user.ID, mock.AnythingOfType("time.Time")).Return(nil)
	fx.tokenService.EXPECT().
		GenerateAccessToken(user.ID, entity.RoleSalesManager.String()).
		Return("signed-token", nil)

	result, err := fx.service.Login(ctx, user.Email, "right-password")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.AccessToken)
	require.NotNil(t, result.User.LastLogin)
	assert.WithinDuration(t, time.Now(), *result.User.LastLogin, time.Minute)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
	}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.passwordHasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, user.Email, "wrong")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestAuthService_Login_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, "nobody@example.com", "whatever")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestAuthService_Login_InactiveAccountRejected(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "gone@example.com",
		PasswordHash: "$2a$10$hash",
		IsActive:     false,
	}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.passwordHasher.EXPECT().Check("right-password", user.PasswordHash).Return(true)

	_, err := fx.service.Login(ctx, user.Email, "right-password")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_INACTIVE", appErr.ErrorCode())
}
