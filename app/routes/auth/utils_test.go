package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "admin@example.com", "Admin", "admin")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "Admin", claims.Name)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}
