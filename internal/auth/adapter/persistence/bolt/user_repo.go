// Package bolt adapts the auth domain repositories onto the durable ordered
// map. Each repository owns one store namespace.
package bolt

import (
	"context"
	"fmt"

	"mentorhub/internal/auth/domain/model"
	"mentorhub/internal/auth/domain/repository"
	"mentorhub/internal/shared/store"
)

// UserRepository persists user records in the "users" namespace, keyed by id.
type UserRepository struct {
	users store.Map[model.User]
}

// NewUserRepository creates a user repository over the given map.
func NewUserRepository(users store.Map[model.User]) *UserRepository {
	return &UserRepository{users: users}
}

// CreateUser stores a new user record keyed by its id.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	_, replaced, err := r.users.Insert(ctx, user.ID, *user)
	if err != nil {
		return fmt.Errorf("failed to store user %s: %w", user.ID, err)
	}
	// Ids are uuids generated at creation, so a replacement indicates a bug
	// upstream rather than a legal overwrite.
	if replaced {
		return fmt.Errorf("user id %s already existed", user.ID)
	}
	return nil
}

// GetUserByID returns the user stored under id.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	user, ok, err := r.users.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read user %s: %w", id, err)
	}
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return &user, nil
}

// GetUserByUsername scans all users in key order for a matching username.
// Linear, which is fine at the registry's scale; a username index would have
// to stay strictly consistent with this namespace on every insert.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	users, err := r.users.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, model.ErrUserNotFound
}

// ListUsers returns all users in key order.
func (r *UserRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := r.users.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	out := make([]*model.User, len(users))
	for i := range users {
		out[i] = &users[i]
	}
	return out, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
