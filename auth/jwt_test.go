package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akum103/ats-resume-matcher/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecret: "test-secret", JWTExpiryHours: 1})

	token, expiresAt, err := svc.GenerateToken("Ankit")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Ankit", claims.User)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(&config.Config{JWTSecret: "secret-a", JWTExpiryHours: 1})
	verifier := NewJWTService(&config.Config{JWTSecret: "secret-b", JWTExpiryHours: 1})

	token, _, err := issuer.GenerateToken("Ankit")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecret: "test-secret", JWTExpiryHours: 1})

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
