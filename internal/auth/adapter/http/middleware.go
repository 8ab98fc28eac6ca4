package http

import (
	"context"
	"strings"

	"mentorhub/internal/auth/usecase"
	"mentorhub/internal/shared/contextkeys"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// AuthMiddleware provides authentication middleware for Fiber
type AuthMiddleware struct {
	usecase    usecase.AuthUsecaseInterface
	cookieName string
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(uc usecase.AuthUsecaseInterface, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		usecase:    uc,
		cookieName: cookieName,
	}
}

// RequestID middleware
func (m *AuthMiddleware) RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     "X-Request-ID",
		ContextKey: string(contextkeys.RequestIDKey),
	})
}

// Protect returns middleware that requires authentication. The token only
// identifies the caller; the durable session record is authoritative, so a
// valid token for a logged-out user is still rejected.
func (m *AuthMiddleware) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := m.extractToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		claims, err := m.usecase.ValidateToken(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		loggedIn, err := m.usecase.IsLoggedIn(c.Context(), claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to check session",
			})
		}
		if !loggedIn {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not logged in",
			})
		}

		ctx := c.UserContext()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, contextkeys.RoleKey, string(claims.Role))

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// RequireRole returns middleware that requires a specific role. Must run after
// Protect.
func (m *AuthMiddleware) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got, ok := c.UserContext().Value(contextkeys.RoleKey).(string)
		if !ok || got != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Insufficient permissions",
			})
		}
		return c.Next()
	}
}

// extractToken extracts the token from Authorization header or cookie
func (m *AuthMiddleware) extractToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	if token := c.Cookies(m.cookieName); token != "" {
		return token, nil
	}

	return "", fiber.NewError(fiber.StatusUnauthorized, "No authentication token found")
}
