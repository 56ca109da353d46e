package auth

import (
	"testing"

	"gym-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-characters-long"

func TestGenerateTokenRoundTrip(t *testing.T) {
	user := &models.User{
		ID:       "342c1841-26dc-4fd4-8f98-0d9e84de3a28",
		Username: "demouser",
		Role:     models.RoleAdmin,
	}

	tokenStr, err := GenerateToken(testSecret, user)
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*JWTCustomClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	user := &models.User{ID: "abc", Username: "x", Role: models.RoleStaff}

	tokenStr, err := GenerateToken(testSecret, user)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("another-secret-also-32-characters-xx"), nil
	})
	assert.Error(t, err)
}
