package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mentorhub/internal/auth/config"
	"mentorhub/internal/auth/domain/model"
	"mentorhub/internal/auth/domain/repository"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/eventbus"
	"mentorhub/internal/shared/types"

	"github.com/google/uuid"
)

// AuthUsecaseInterface defines the contract for registry and session use cases.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req LoginRequest) (*model.User, string, error)
	Logout(ctx context.Context, userID string) error
	IsLoggedIn(ctx context.Context, userID string) (bool, error)
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error)
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Expertise string `json:"expertise,omitempty"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthUsecase implements the user registry and session store.
type AuthUsecase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	tokenSvc repository.TokenService
	config   *config.Config
	events   eventbus.EventBusInterface
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	tokenSvc repository.TokenService,
	cfg *config.Config,
	events eventbus.EventBusInterface,
) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		sessions: sessions,
		tokenSvc: tokenSvc,
		config:   cfg,
		events:   events,
	}
}

// Register creates a new user with a fresh unique id. The username must not be
// taken; the check scans the stored users immediately before the single insert.
func (uc *AuthUsecase) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)

	expertise := types.None[model.Expertise]()
	if req.Expertise != "" {
		expertise = types.Some(model.Expertise(req.Expertise))
	}

	user := &model.User{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  req.Password,
		Role:      model.Role(req.Role),
		Expertise: expertise,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: types.None[time.Time](),
	}

	if err := user.ValidateFields(); err != nil {
		return nil, apperrors.NewValidationError(err.Error()).WithComponent("auth")
	}

	existing, err := uc.users.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return nil, apperrors.WrapError(err, "failed to check existing user")
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(model.ErrUsernameTaken.Error()).
			WithComponent("auth").WithDetail("username", username)
	}

	if err := uc.users.CreateUser(ctx, user); err != nil {
		return nil, apperrors.WrapError(err, "failed to create user")
	}

	uc.publish(ctx, eventbus.EventTypeUserRegistered, user.ID)
	return user.Sanitized(), nil
}

// Login authenticates by exact username and password comparison, then creates
// or overwrites the durable session keyed by the user's id. The returned token
// is a transport credential only; the session record stays authoritative.
func (uc *AuthUsecase) Login(ctx context.Context, req LoginRequest) (*model.User, string, error) {
	user, err := uc.users.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, "", apperrors.NewAuthenticationError(model.ErrInvalidPassword.Error()).WithComponent("auth")
		}
		return nil, "", apperrors.WrapError(err, "failed to look up user")
	}

	// Verbatim comparison; no session must be created or touched on mismatch.
	if user.Password != req.Password {
		return nil, "", apperrors.NewAuthenticationError(model.ErrInvalidPassword.Error()).WithComponent("auth")
	}

	session := &model.Session{
		UserID:    user.ID,
		User:      *user,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.sessions.PutSession(ctx, session); err != nil {
		return nil, "", apperrors.WrapError(err, "failed to store session")
	}

	token, err := uc.tokenSvc.GenerateToken(ctx, user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", apperrors.WrapError(err, "failed to generate token")
	}

	uc.publish(ctx, eventbus.EventTypeUserLoggedIn, user.ID)
	return user.Sanitized(), token, nil
}

// Logout removes the session for the user. Logging out without a live session
// is an error surfaced to the caller.
func (uc *AuthUsecase) Logout(ctx context.Context, userID string) error {
	existed, err := uc.sessions.DeleteSession(ctx, userID)
	if err != nil {
		return apperrors.WrapError(err, "failed to delete session")
	}
	if !existed {
		return apperrors.NewNotLoggedInError(model.ErrSessionNotFound.Error()).WithComponent("auth")
	}

	uc.publish(ctx, eventbus.EventTypeUserLoggedOut, userID)
	return nil
}

// IsLoggedIn reports whether a session exists for the user. Sessions never
// expire on their own.
func (uc *AuthUsecase) IsLoggedIn(ctx context.Context, userID string) (bool, error) {
	_, err := uc.sessions.GetSession(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return false, nil
		}
		return false, apperrors.WrapError(err, "failed to read session")
	}
	return true, nil
}

// GetUserByID retrieves a user by id.
func (uc *AuthUsecase) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user ID is required")
	}

	user, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user").WithDetail("userId", userID)
		}
		return nil, apperrors.WrapError(err, "failed to read user")
	}
	return user.Sanitized(), nil
}

// FindByUsername retrieves a user by username; a missing user is not an error.
func (uc *AuthUsecase) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := uc.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, nil
		}
		return nil, apperrors.WrapError(err, "failed to scan users")
	}
	return user.Sanitized(), nil
}

// ValidateToken validates a transport token and returns its claims.
func (uc *AuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, apperrors.NewAuthenticationError("token is invalid").WithCause(err)
	}
	return claims, nil
}

func (uc *AuthUsecase) publish(ctx context.Context, eventType, userID string) {
	if uc.events == nil {
		return
	}
	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(eventType, userID, "auth-usecase"))
}

// Ensure AuthUsecase implements AuthUsecaseInterface
var _ AuthUsecaseInterface = (*AuthUsecase)(nil)
