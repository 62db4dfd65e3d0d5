package adapter

import (
	"context"
	"time"
)

// TokenClaims is what the API learns about the caller from a verified token.
type TokenClaims struct {
	ID        string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies the bearer tokens that guard the ledger API.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, subject string, ttl time.Duration) (string, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
