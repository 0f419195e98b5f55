package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseClaims(t *testing.T, signed, secret string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	return token.Claims.(jwt.MapClaims)
}

func TestIssueUserToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := IssueUserToken("user-1", "an@example.com", "An Nguyen")
	require.NoError(t, err)

	claims := parseClaims(t, signed, "test-secret")
	assert.Equal(t, "user-1", claims["id"])
	assert.Equal(t, "an@example.com", claims["email"])
	assert.Equal(t, "An Nguyen", claims["name"])
	assert.NotContains(t, claims, "role")

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(tokenTTL), exp.Time, time.Minute)
}

func TestIssueAdminToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := IssueAdminToken("admin-1", "root")
	require.NoError(t, err)

	claims := parseClaims(t, signed, "test-secret")
	assert.Equal(t, "admin-1", claims["id"])
	assert.Equal(t, "root", claims["username"])
	assert.Equal(t, "admin", claims["role"])
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := IssueUserToken("user-1", "an@example.com", "An Nguyen")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
