package bolt

import (
	"context"
	"fmt"

	"mentorhub/internal/auth/domain/model"
	"mentorhub/internal/auth/domain/repository"
	"mentorhub/internal/shared/store"
)

// SessionRepository persists session records in the "sessions" namespace,
// keyed by user id. A put overwrites any live session for that user.
type SessionRepository struct {
	sessions store.Map[model.Session]
}

// NewSessionRepository creates a session repository over the given map.
func NewSessionRepository(sessions store.Map[model.Session]) *SessionRepository {
	return &SessionRepository{sessions: sessions}
}

// PutSession stores the session, replacing any existing one for the user.
func (r *SessionRepository) PutSession(ctx context.Context, session *model.Session) error {
	if _, _, err := r.sessions.Insert(ctx, session.UserID, *session); err != nil {
		return fmt.Errorf("failed to store session for user %s: %w", session.UserID, err)
	}
	return nil
}

// GetSession returns the live session for the user, if any.
func (r *SessionRepository) GetSession(ctx context.Context, userID string) (*model.Session, error) {
	session, ok, err := r.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read session for user %s: %w", userID, err)
	}
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return &session, nil
}

// DeleteSession removes the session for the user and reports whether one existed.
func (r *SessionRepository) DeleteSession(ctx context.Context, userID string) (bool, error) {
	_, ok, err := r.sessions.Remove(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete session for user %s: %w", userID, err)
	}
	return ok, nil
}

var _ repository.SessionRepository = (*SessionRepository)(nil)
