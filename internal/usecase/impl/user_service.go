package impl

import (
	"context"
	"fmt"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	"foamstock/internal/domain/service"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo       repository.UserRepository
	passwordHasher service.PasswordHasher
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	PasswordHasher service.PasswordHasher
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:       params.UserRepo,
		passwordHasher: params.PasswordHasher,
	}
}

// ListUsers retrieves accounts matching the filter.
func (s *userService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error) {
	if filter.Role != "" && !filter.Role.IsValid() {
		return nil, 0, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown role %q", filter.Role))
	}

	users, total, err := s.userRepo.ListUsers(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	return users, total, nil
}

// GetUser retrieves a single account.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// CreateUser creates an account with role-default permissions.
func (s *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown role %q", input.Role))
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		Permissions:  entity.DefaultPermissions(input.Role),
		IsActive:     true,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// UpdateUser applies the provided changes. Changing the role resets the
// permission set to the new role's defaults.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("unknown role %q", *input.Role))
		}
		if *input.Role != user.Role {
			user.Role = *input.Role
			user.Permissions = entity.DefaultPermissions(user.Role)
		}
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != nil {
		hash, err := s.passwordHasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// PatchPermissions flips individual permission flags by name. Unknown names
// fail validation.
func (s *userService) PatchPermissions(ctx context.Context, id uuid.UUID, changes map[string]bool) (*entity.User, error) {
	if len(changes) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no permission changes provided")
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	permissions := user.Permissions
	for name, granted := range changes {
		if !permissions.Set(name, granted) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("unknown permission %q", name))
		}
	}

	if err := s.userRepo.UpdatePermissions(ctx, user.ID, permissions); err != nil {
		return nil, errors.Wrap(err, "failed to update permissions")
	}
	user.Permissions = permissions

	return user, nil
}
