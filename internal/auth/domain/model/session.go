package model

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Session marks a user as currently authenticated. It is keyed by the user's
// id and holds a snapshot of the user record taken at login time. Absence of a
// session means logged out; sessions never expire on their own.
type Session struct {
	UserID    string    `json:"userId"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
