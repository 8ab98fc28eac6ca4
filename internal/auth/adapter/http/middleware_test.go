package http

import (
	"net/http/httptest"
	"testing"

	"mentorhub/internal/auth/domain/model"
	"mentorhub/internal/auth/domain/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRoleTestApp(uc *mockAuthUsecase) *fiber.App {
	app := fiber.New()
	middleware := NewAuthMiddleware(uc, "mh_auth_token")
	app.Get("/mentor-only", middleware.Protect(), middleware.RequireRole("mentor"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	uc := &mockAuthUsecase{}
	app := newRoleTestApp(uc)

	claims := &repository.Claims{UserID: "u1", Username: "alice", Role: model.RoleMentor}
	uc.On("ValidateToken", mock.Anything, "mentor-token").Return(claims, nil)
	uc.On("IsLoggedIn", mock.Anything, "u1").Return(true, nil)

	req := httptest.NewRequest("GET", "/mentor-only", nil)
	req.Header.Set("Authorization", "Bearer mentor-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_ForbidsOtherRole(t *testing.T) {
	uc := &mockAuthUsecase{}
	app := newRoleTestApp(uc)

	claims := &repository.Claims{UserID: "u2", Username: "bob", Role: model.RoleMentee}
	uc.On("ValidateToken", mock.Anything, "mentee-token").Return(claims, nil)
	uc.On("IsLoggedIn", mock.Anything, "u2").Return(true, nil)

	req := httptest.NewRequest("GET", "/mentor-only", nil)
	req.Header.Set("Authorization", "Bearer mentee-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_WithoutProtectForbids(t *testing.T) {
	uc := &mockAuthUsecase{}
	app := fiber.New()
	middleware := NewAuthMiddleware(uc, "mh_auth_token")
	app.Get("/unguarded", middleware.RequireRole("mentor"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/unguarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
