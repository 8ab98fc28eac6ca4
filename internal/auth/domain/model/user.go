package model

import (
	"errors"
	"time"

	"mentorhub/internal/shared/types"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username is already taken")
	ErrInvalidRole     = errors.New("role must be mentor or mentee")
	ErrInvalidTag      = errors.New("unknown expertise tag")
	ErrEmptyUsername   = errors.New("username cannot be empty")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrInvalidPassword = errors.New("invalid password")
)

// Role distinguishes the two sides of a mentorship.
type Role string

const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

// IsValid reports whether the role is a member of the closed set.
func (r Role) IsValid() bool {
	return r == RoleMentor || r == RoleMentee
}

// Expertise is a domain tag a mentor advertises. The set is closed.
type Expertise string

const (
	ExpertiseICP        Expertise = "ICP"
	ExpertiseWeb        Expertise = "web"
	ExpertiseMobile     Expertise = "mobile"
	ExpertiseAI         Expertise = "ai"
	ExpertiseCloud      Expertise = "cloud"
	ExpertiseBlockchain Expertise = "blockchain"
)

// IsValid reports whether the tag is a member of the closed set.
func (e Expertise) IsValid() bool {
	switch e {
	case ExpertiseICP, ExpertiseWeb, ExpertiseMobile, ExpertiseAI, ExpertiseCloud, ExpertiseBlockchain:
		return true
	}
	return false
}

// User represents a registered user. The id is generated at creation and never
// reused; username is the only natural key and is kept unique at registration.
// The password is stored verbatim and compared exactly; hashing is a known gap
// of the current design and deliberately not addressed here. Handlers must
// clear Password before returning a user to a caller.
type User struct {
	ID        string                    `json:"id"`
	Username  string                    `json:"username"`
	Password  string                    `json:"password,omitempty"`
	Role      Role                      `json:"role"`
	Expertise types.Optional[Expertise] `json:"expertise"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt types.Optional[time.Time] `json:"updatedAt"`
}

// ValidateFields checks the closed enumerations and required fields.
func (u *User) ValidateFields() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}
	if tag, ok := u.Expertise.Get(); ok && !tag.IsValid() {
		return ErrInvalidTag
	}
	return nil
}

// Sanitized returns a copy safe to hand to callers, with the credential cleared.
func (u User) Sanitized() *User {
	u.Password = ""
	return &u
}
