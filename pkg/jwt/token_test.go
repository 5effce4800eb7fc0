package jwtPkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	token, expiredAt, err := Sign(map[string]interface{}{
		"id":       "01HZXC5Q9W",
		"email":    "user@example.com",
		"username": "user",
	}, time.Hour)
	require.NoError(t, err)
	assert.Greater(t, expiredAt, time.Now().Unix())

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "01HZXC5Q9W", claims["id"])
	assert.Equal(t, "user@example.com", claims["email"])
	assert.Equal(t, "user", claims["username"])
	assert.Equal(t, true, claims["authorization"])
}

func TestSignWithoutSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "")

	_, _, err := Sign(map[string]interface{}{"id": "x"}, time.Hour)
	assert.Error(t, err)
}
