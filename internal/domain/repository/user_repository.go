package repository

import (
	"context"
	"time"

	"foamstock/internal/domain/entity"
	"foamstock/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserFilter narrows user list queries.
type UserFilter struct {
	Role            entity.Role
	IncludeInactive bool
	Limit           int
	Offset          int
}

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListUsers retrieves users matching the filter along with the total count
	// before pagination.
	ListUsers(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)

	// UpdateUser persists changes to an existing user.
	UpdateUser(ctx context.Context, user *entity.User) error

	// UpdatePermissions overwrites a user's capability set.
	UpdatePermissions(ctx context.Context, id uuid.UUID, permissions entity.PermissionSet) error

	// UpdateLastLogin stamps the last successful login time.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
