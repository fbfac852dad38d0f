package types

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer is the iss claim of every SmartChef access token.
const TokenIssuer = "smartchef"

// TokenClaims identify the user behind a SmartChef API token.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// NewTokenClaims returns claims for userID issued at now and expiring
// after ttl. The subject mirrors the user id.
func NewTokenClaims(userID uuid.UUID, email string, now time.Time, ttl time.Duration) *TokenClaims {
	return &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
	}
}
