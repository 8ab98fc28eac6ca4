package repository

import (
	"context"

	"mentorhub/internal/auth/domain/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the transport credential. The durable session record stays
// authoritative; the token only identifies the caller between requests.
type Claims struct {
	UserID   string     `json:"userId"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the contract for issuing and validating transport tokens.
type TokenService interface {
	GenerateToken(ctx context.Context, userID, username string, role model.Role) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
