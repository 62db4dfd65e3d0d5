package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService("secret", "ledger")

	token, err := svc.GenerateAccessToken(ctx, "owner", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, time.Minute)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)

	_, err = svc.GenerateAccessToken(ctx, "", time.Hour)
	assert.Error(t, err)
}

func TestTokenService_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService("secret", "ledger")

	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.RegisteredClaims) string {
		t.Helper()
		signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return signed
	}
	valid := func() jwt.RegisteredClaims {
		now := time.Now()
		return jwt.RegisteredClaims{
			Issuer:    "ledger",
			Subject:   "owner",
			Audience:  jwt.ClaimStrings{apiAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}
	}

	expired, err := svc.GenerateAccessToken(ctx, "owner", -time.Minute)
	require.NoError(t, err)
	foreign, err := NewTokenService("other-secret", "ledger").GenerateAccessToken(ctx, "owner", time.Hour)
	require.NoError(t, err)
	otherIssuer, err := NewTokenService("secret", "someone-else").GenerateAccessToken(ctx, "owner", time.Hour)
	require.NoError(t, err)

	wrongAudience := valid()
	wrongAudience.Audience = jwt.ClaimStrings{"billing-api"}
	noExpiry := valid()
	noExpiry.ExpiresAt = nil
	noSubject := valid()
	noSubject.Subject = ""

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired},
		{name: "foreign secret", token: foreign},
		{name: "other issuer", token: otherIssuer},
		{name: "other audience", token: sign(jwt.SigningMethodHS256, []byte("secret"), wrongAudience)},
		{name: "no expiry", token: sign(jwt.SigningMethodHS256, []byte("secret"), noExpiry)},
		{name: "no subject", token: sign(jwt.SigningMethodHS256, []byte("secret"), noSubject)},
		{name: "other algorithm", token: sign(jwt.SigningMethodHS512, []byte("secret"), valid())},
		{name: "garbage", token: "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(ctx, tt.token)
			assert.Error(t, err)
		})
	}
}
