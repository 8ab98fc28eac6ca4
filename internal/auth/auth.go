package auth

import (
	"fmt"

	authhttp "mentorhub/internal/auth/adapter/http"
	"mentorhub/internal/auth/adapter/persistence/bolt"
	"mentorhub/internal/auth/adapter/security"
	"mentorhub/internal/auth/config"
	"mentorhub/internal/auth/domain/model"
	"mentorhub/internal/auth/domain/repository"
	"mentorhub/internal/auth/usecase"
	"mentorhub/internal/shared/eventbus"
	"mentorhub/internal/shared/store"

	"github.com/gofiber/fiber/v2"
	"go.etcd.io/bbolt"
)

// AuthModule represents the complete registration and session module
type AuthModule struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	tokenSvc repository.TokenService
	usecase  usecase.AuthUsecaseInterface
	handler  *authhttp.AuthHTTPHandler
	config   *config.Config
}

// NewAuthModule creates a new authentication module instance backed by the
// given durable store.
func NewAuthModule(db *bbolt.DB, cfg *config.Config, events eventbus.EventBusInterface) (*AuthModule, error) {
	userMap, err := store.NewBoltMap[model.User](db, "users")
	if err != nil {
		return nil, fmt.Errorf("failed to open users namespace: %w", err)
	}
	sessionMap, err := store.NewBoltMap[model.Session](db, "sessions")
	if err != nil {
		return nil, fmt.Errorf("failed to open sessions namespace: %w", err)
	}

	userRepo := bolt.NewUserRepository(userMap)
	sessionRepo := bolt.NewSessionRepository(sessionMap)

	tokenSvc, err := security.NewJWTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	authUsecase := usecase.NewAuthUsecase(userRepo, sessionRepo, tokenSvc, cfg, events)

	handler := authhttp.NewAuthHTTPHandler(
		authUsecase,
		cfg.CookieName,
		cfg.CookiePath,
		cfg.CookieDomain,
		int(cfg.AccessTokenTTL.Seconds()),
		cfg.CookieSecure,
		cfg.CookieHTTPOnly,
		cfg.CookieSameSite,
	)

	return &AuthModule{
		users:    userRepo,
		sessions: sessionRepo,
		tokenSvc: tokenSvc,
		usecase:  authUsecase,
		handler:  handler,
		config:   cfg,
	}, nil
}

// RegisterRoutes registers authentication routes with the provided router
func (am *AuthModule) RegisterRoutes(router fiber.Router) {
	am.handler.SetupAuthRoutesWithMiddleware(router, am.GetMiddleware())
}

// GetUsecase returns the auth usecase for external access
func (am *AuthModule) GetUsecase() usecase.AuthUsecaseInterface {
	return am.usecase
}

// GetUserRepository returns the user repository for external access
func (am *AuthModule) GetUserRepository() repository.UserRepository {
	return am.users
}

// GetMiddleware returns the auth middleware
func (am *AuthModule) GetMiddleware() *authhttp.AuthMiddleware {
	return authhttp.NewAuthMiddleware(am.usecase, am.config.CookieName)
}

// Stop performs cleanup when the module is shut down. The bolt handle is
// owned by the caller, so there is nothing to release here.
func (am *AuthModule) Stop() error {
	return nil
}
