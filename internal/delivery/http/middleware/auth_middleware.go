// Package middleware contains the HTTP middlewares for the application.
package middleware

import (
	"strings"

	"foamstock/internal/delivery/http/response"
	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"
	"foamstock/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// actorContextKey is the Echo context key holding the authenticated account.
const actorContextKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
// The account behind the token is loaded fresh on every request so permission
// patches and deactivation take effect immediately.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the JWT access token and loads the account.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "AUTH_REQUIRED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "AUTH_REQUIRED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		user, err := m.userRepo.FindUserByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Account behind token no longer exists")
		}
		if !user.IsActive {
			return response.Unauthorized(c, "USER_INACTIVE", "Account has been deactivated")
		}

		c.Set(actorContextKey, user)

		return next(c)
	}
}

// RequirePermission is a middleware factory that checks a capability flag.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFromContext(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: account information missing")
			}

			if !actor.Permissions.Has(permission) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+permission+"' permission")
			}

			return next(c)
		}
	}
}

// RequireRole is a middleware factory that checks the account role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFromContext(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: account information missing")
			}

			if actor.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// ActorFromContext retrieves the authenticated account set by Authenticate.
func ActorFromContext(c echo.Context) (*entity.User, bool) {
	actor, ok := c.Get(actorContextKey).(*entity.User)

	return actor, ok
}
