package http

import (
	"time"

	"mentorhub/internal/auth/usecase"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthHTTPHandler handles HTTP requests for registration and sessions
type AuthHTTPHandler struct {
	usecase        usecase.AuthUsecaseInterface
	cookieName     string
	cookiePath     string
	cookieDomain   string
	cookieMaxAge   int
	cookieSecure   bool
	cookieHTTPOnly bool
	cookieSameSite string
}

// NewAuthHTTPHandler creates a new authentication HTTP handler
func NewAuthHTTPHandler(
	uc usecase.AuthUsecaseInterface,
	cookieName, cookiePath, cookieDomain string,
	cookieMaxAge int,
	cookieSecure, cookieHTTPOnly bool,
	cookieSameSite string,
) *AuthHTTPHandler {
	return &AuthHTTPHandler{
		usecase:        uc,
		cookieName:     cookieName,
		cookiePath:     cookiePath,
		cookieDomain:   cookieDomain,
		cookieMaxAge:   cookieMaxAge,
		cookieSecure:   cookieSecure,
		cookieHTTPOnly: cookieHTTPOnly,
		cookieSameSite: cookieSameSite,
	}
}

// SetupAuthRoutesWithMiddleware sets up authentication routes with middleware
func (h *AuthHTTPHandler) SetupAuthRoutesWithMiddleware(router fiber.Router, middleware *AuthMiddleware) {
	// Public routes (no authentication required)
	router.Post("/auth/register", h.Register)
	router.Post("/auth/login", h.Login)

	// Protected routes (authentication required)
	protected := router.Group("/", middleware.Protect())
	protected.Post("/auth/logout", h.Logout)
	protected.Get("/auth/me", h.GetCurrentUser)
	protected.Get("/users/:userId", h.GetUser)
}

// Register handles user registration
func (h *AuthHTTPHandler) Register(c *fiber.Ctx) error {
	var req usecase.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := h.usecase.Register(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles user login
func (h *AuthHTTPHandler) Login(c *fiber.Ctx) error {
	var req usecase.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, token, err := h.usecase.Login(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	h.setCookie(c, token)

	return c.JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Logout handles user logout
func (h *AuthHTTPHandler) Logout(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if err := h.usecase.Logout(c.Context(), userID); err != nil {
		return writeError(c, err)
	}

	h.clearCookie(c)

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns current user information
func (h *AuthHTTPHandler) GetCurrentUser(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	user, err := h.usecase.GetUserByID(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(user)
}

// GetUser gets a specific user by id
func (h *AuthHTTPHandler) GetUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID required",
		})
	}

	user, err := h.usecase.GetUserByID(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(user)
}

// writeError maps core error kinds onto distinct status codes: 401 for auth
// and missing-session, 404 for not-found, 409 for conflicts, 400 otherwise.
func writeError(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// Helper methods

func (h *AuthHTTPHandler) setCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     h.cookiePath,
		Domain:   h.cookieDomain,
		MaxAge:   h.cookieMaxAge,
		Secure:   h.cookieSecure,
		HTTPOnly: h.cookieHTTPOnly,
		SameSite: h.cookieSameSite,
		Expires:  time.Now().Add(time.Duration(h.cookieMaxAge) * time.Second),
	})
}

func (h *AuthHTTPHandler) clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     h.cookiePath,
		Domain:   h.cookieDomain,
		MaxAge:   -1,
		Secure:   h.cookieSecure,
		HTTPOnly: h.cookieHTTPOnly,
		SameSite: h.cookieSameSite,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
