package impl

import (
	"context"
	"testing"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	mockRepo "foamstock/internal/mocks/repository"
	mockService "foamstock/internal/mocks/service"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service        usecase.UserUsecase
	userRepo       *mockRepo.MockUserRepository
	passwordHasher *mockService.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	passwordHasher := mockService.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		UserRepo:       userRepo,
		PasswordHasher: passwordHasher,
	})

	return userServiceFixtures{
		service:        service,
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
	}
}

func TestUserService_PatchPermissions(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:          uuid.New(),
		Role:        entity.RoleSalesperson,
		Permissions: entity.DefaultPermissions(entity.RoleSalesperson),
		IsActive:    true,
	}

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().
		UpdatePermissions(ctx, user.ID, entity.PermissionSet{
			ViewReports:     true,
			ManageSales:     true,
			ManageCustomers: true,
		}).
		Return(nil)

	updated, err := fx.service.PatchPermissions(ctx, user.ID, map[string]bool{
		entity.PermissionViewReports: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.Permissions.ViewReports)
	assert.True(t, updated.Permissions.ManageSales)
	assert.False(t, updated.Permissions.ManageUsers)
}

func TestUserService_PatchPermissions_UnknownName(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:          uuid.New(),
		Role:        entity.RoleSalesperson,
		Permissions: entity.DefaultPermissions(entity.RoleSalesperson),
	}

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

	_, err := fx.service.PatchPermissions(ctx, user.ID, map[string]bool{"delete_everything": true})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_UpdateUser_RoleChangeResetsPermissions(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:          uuid.New(),
		Role:        entity.RoleSalesperson,
		Permissions: entity.DefaultPermissions(entity.RoleSalesperson),
		IsActive:    true,
	}
	// A previously granted extra flag is dropped on role change.
	user.Permissions.ViewReports = true

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().UpdateUser(ctx, user).Return(nil)

	role := entity.RoleSalesManager
	updated, err := fx.service.UpdateUser(ctx, user.ID, usecase.UpdateUserInput{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSalesManager, updated.Role)
	assert.Equal(t, entity.DefaultPermissions(entity.RoleSalesManager), updated.Permissions)
}
