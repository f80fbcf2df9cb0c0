package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelup-api/internal/apperr"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)

	assert.True(t, CheckPassword(hash, "secreto123"))
	assert.False(t, CheckPassword(hash, "otra-cosa"))
}

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret", 7*24*time.Hour)

	token, err := ts.Issue(42, "gamer@example.com", "Cliente")
	require.NoError(t, err)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "gamer@example.com", claims.Email)
	assert.Equal(t, "Cliente", claims.Rol)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Issue(1, "a@b.c", "Cliente")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Verify(token)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	ts := NewTokenService("test-secret", -time.Minute)

	token, err := ts.Issue(1, "a@b.c", "Cliente")
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	_, err := ts.Verify("not-a-token")
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}
