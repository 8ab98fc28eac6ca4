package utils

import (
	"context"
	"testing"

	"mentorhub/internal/shared/contextkeys"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := WithUserID(context.Background(), "user-1")
	userID, err := GetUserIDFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, err := GetUserIDFromContext(context.Background())
	assert.ErrorIs(t, err, ErrUserIDNotFound)
}

func TestGetUserIDFromContext_NotString(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, 42)
	_, err := GetUserIDFromContext(ctx)
	assert.ErrorIs(t, err, ErrUserIDNotString)
}

func TestGetUsernameFromContext(t *testing.T) {
	ctx := WithUsername(context.Background(), "alice")
	username, err := GetUsernameFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)

	_, err = GetUsernameFromContext(context.Background())
	assert.ErrorIs(t, err, ErrUsernameNotFound)
}

func TestGetRequestIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextkeys.RequestIDKey, "req-9")
	requestID, err := GetRequestIDFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "req-9", requestID)
}
