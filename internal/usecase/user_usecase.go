package usecase

import (
	"context"

	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateUserInput carries the fields for owner-driven account creation.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      entity.Role
}

// UpdateUserInput carries optional account changes; nil fields are left
// untouched.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Role      *entity.Role
	IsActive  *bool
	Password  *string
}

// UserUsecase defines the interface for staff account management use cases.
type UserUsecase interface {
	// ListUsers retrieves accounts matching the filter.
	ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error)

	// GetUser retrieves a single account.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// CreateUser creates an account with role-default permissions.
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)

	// UpdateUser applies the provided changes. Changing the role resets the
	// permission set to the new role's defaults.
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entity.User, error)

	// PatchPermissions flips individual permission flags by name. Unknown
	// names fail validation.
	PatchPermissions(ctx context.Context, id uuid.UUID, changes map[string]bool) (*entity.User, error)
}
