package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService abstracts access/refresh token generation and validation.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured lifetime of refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
