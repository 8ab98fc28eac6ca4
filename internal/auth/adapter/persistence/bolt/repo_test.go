package bolt

import (
	"context"
	"testing"
	"time"

	"mentorhub/internal/auth/domain/model"
	"mentorhub/internal/shared/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(id, username string) *model.User {
	return &model.User{
		ID:        id,
		Username:  username,
		Password:  "pw",
		Role:      model.RoleMentor,
		CreatedAt: time.Now().UTC(),
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemoryMap[model.User]())

	user := newTestUser("u1", "alice")
	require.NoError(t, repo.CreateUser(ctx, user))

	got, err := repo.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "pw", got.Password)
}

func TestUserRepository_GetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemoryMap[model.User]())

	_, err := repo.GetUserByID(ctx, "nope")
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	_, err = repo.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUserRepository_DuplicateIDRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemoryMap[model.User]())

	require.NoError(t, repo.CreateUser(ctx, newTestUser("u1", "alice")))
	assert.Error(t, repo.CreateUser(ctx, newTestUser("u1", "bob")))
}

func TestUserRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemoryMap[model.User]())

	require.NoError(t, repo.CreateUser(ctx, newTestUser("u1", "alice")))
	require.NoError(t, repo.CreateUser(ctx, newTestUser("u2", "bob")))

	got, err := repo.GetUserByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "u2", got.ID)
}

func TestUserRepository_ListUsersOrdered(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemoryMap[model.User]())

	require.NoError(t, repo.CreateUser(ctx, newTestUser("u2", "bob")))
	require.NoError(t, repo.CreateUser(ctx, newTestUser("u1", "alice")))

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "u2", users[1].ID)
}

func TestSessionRepository_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(store.NewMemoryMap[model.Session]())

	user := newTestUser("u1", "alice")
	session := &model.Session{UserID: user.ID, User: *user, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.PutSession(ctx, session))

	got, err := repo.GetSession(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.User.Username)

	existed, err := repo.DeleteSession(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = repo.GetSession(ctx, "u1")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestSessionRepository_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(store.NewMemoryMap[model.Session]())

	existed, err := repo.DeleteSession(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestSessionRepository_OverwriteOnPut(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(store.NewMemoryMap[model.Session]())

	first := &model.Session{UserID: "u1", User: *newTestUser("u1", "alice"), CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, repo.PutSession(ctx, first))

	second := &model.Session{UserID: "u1", User: *newTestUser("u1", "alice"), CreatedAt: time.Now()}
	require.NoError(t, repo.PutSession(ctx, second))

	got, err := repo.GetSession(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.After(first.CreatedAt))
}
