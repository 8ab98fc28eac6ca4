package utils

import (
	"context"
	"errors"

	"mentorhub/internal/shared/contextkeys"
)

// Common context errors
var (
	ErrUserIDNotFound     = errors.New("userID not found in context")
	ErrUserIDNotString    = errors.New("userID in context is not a string")
	ErrUsernameNotFound   = errors.New("username not found in context")
	ErrUsernameNotString  = errors.New("username in context is not a string")
	ErrRequestIDNotFound  = errors.New("requestID not found in context")
	ErrRequestIDNotString = errors.New("requestID in context is not a string")
)

// GetUserIDFromContext retrieves the authenticated user's ID from the context.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.UserIDKey)
	if val == nil {
		return "", ErrUserIDNotFound
	}
	userID, ok := val.(string)
	if !ok {
		return "", ErrUserIDNotString
	}
	return userID, nil
}

// GetUsernameFromContext retrieves the authenticated user's username from the context.
func GetUsernameFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.UsernameKey)
	if val == nil {
		return "", ErrUsernameNotFound
	}
	username, ok := val.(string)
	if !ok {
		return "", ErrUsernameNotString
	}
	return username, nil
}

// GetRequestIDFromContext retrieves the request ID from the context.
func GetRequestIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.RequestIDKey)
	if val == nil {
		return "", ErrRequestIDNotFound
	}
	requestID, ok := val.(string)
	if !ok {
		return "", ErrRequestIDNotString
	}
	return requestID, nil
}

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextkeys.UserIDKey, userID)
}

// WithUsername returns a context carrying the authenticated user's username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, contextkeys.UsernameKey, username)
}
