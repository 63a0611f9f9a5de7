// Package usecase defines the application's use case interfaces and their
// input/output models.
package usecase

import (
	"context"

	"foamstock/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the fields needed to create a staff account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      entity.Role
}

// AuthResult bundles the authenticated user with the issued access token.
type AuthResult struct {
	User        *entity.User
	AccessToken string
}

// AuthUsecase defines the interface for authentication use cases.
type AuthUsecase interface {
	// Register creates a new staff account with role-default permissions and
	// issues an access token.
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)

	// Login verifies credentials, stamps the last login time and issues an
	// access token. Deactivated accounts are rejected.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// GetProfile retrieves the account behind an authenticated request.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
