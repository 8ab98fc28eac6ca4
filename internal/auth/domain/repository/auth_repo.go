package repository

import (
	"context"

	"mentorhub/internal/auth/domain/model"
)

// UserRepository defines the persistence contract for user records. Lookups
// return model.ErrUserNotFound when no record exists.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
}

// SessionRepository defines the persistence contract for session records,
// keyed by user id. PutSession overwrites any existing session for the user.
type SessionRepository interface {
	PutSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, userID string) (*model.Session, error)
	DeleteSession(ctx context.Context, userID string) (bool, error)
}
