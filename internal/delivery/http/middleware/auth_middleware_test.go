package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/service"
	mockRepo "foamstock/internal/mocks/repository"
	mockService "foamstock/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_SetsActor(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mw := NewAuthMiddleware(tokenSvc, userRepo)

	user := &entity.User{
		ID:          uuid.New(),
		Role:        entity.RoleSalesManager,
		Permissions: entity.DefaultPermissions(entity.RoleSalesManager),
		IsActive:    true,
	}

	tokenSvc.EXPECT().ValidateToken("valid-token").Return(&service.Claims{
		UserID: user.ID,
		Role:   user.Role.String(),
	}, nil)
	userRepo.EXPECT().FindUserByID(mock.Anything, user.ID).Return(user, nil)

	c, rec := newAuthTestContext(t, "Bearer valid-token")

	var actor *entity.User
	err := mw.Authenticate(func(c echo.Context) error {
		actor, _ = ActorFromContext(c)

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, actor)
	assert.Equal(t, user.ID, actor.ID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mw := NewAuthMiddleware(tokenSvc, userRepo)

	c, rec := newAuthTestContext(t, "")

	err := mw.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_REQUIRED")
}

func TestAuthMiddleware_Authenticate_DeactivatedAccount(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mw := NewAuthMiddleware(tokenSvc, userRepo)

	user := &entity.User{
		ID:       uuid.New(),
		Role:     entity.RoleSalesperson,
		IsActive: false,
	}

	tokenSvc.EXPECT().ValidateToken("stale-token").Return(&service.Claims{UserID: user.ID}, nil)
	userRepo.EXPECT().FindUserByID(mock.Anything, user.ID).Return(user, nil)

	c, rec := newAuthTestContext(t, "Bearer stale-token")

	err := mw.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_INACTIVE")
}

func TestAuthMiddleware_RequirePermission(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mw := NewAuthMiddleware(tokenSvc, userRepo)

	actor := &entity.User{
		ID:          uuid.New(),
		Role:        entity.RoleSalesperson,
		Permissions: entity.DefaultPermissions(entity.RoleSalesperson),
		IsActive:    true,
	}

	t.Run("granted", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set("actor", actor)

		err := mw.RequirePermission(entity.PermissionManageSales)(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("denied", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set("actor", actor)

		err := mw.RequirePermission(entity.PermissionManageUsers)(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mw := NewAuthMiddleware(tokenSvc, userRepo)

	actor := &entity.User{
		ID:       uuid.New(),
		Role:     entity.RoleSalesManager,
		IsActive: true,
	}

	c, rec := newAuthTestContext(t, "")
	c.Set("actor", actor)

	err := mw.RequireRole(entity.RoleBusinessOwner)(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
