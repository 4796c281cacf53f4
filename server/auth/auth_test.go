package auth

import (
	"testing"
	"time"

	"github.com/Daskott/coastal-alert/server/auth/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("very-secure")
	require.NoError(t, err)

	assert.NotEqual(t, "very-secure", hash)
	assert.True(t, CheckPasswordHash("very-secure", hash))
	assert.False(t, CheckPasswordHash("not-the-password", hash))
}

func TestEncodeAndDecodeJWT(t *testing.T) {
	keyPair, err := key.GenerateKeyPair()
	require.NoError(t, err)

	claims := NewTokenClaims(7, "Asha", "asha@coast.in", true, time.Hour)
	token, err := EncodeJWT(claims, keyPair)
	require.NoError(t, err)

	decoded, err := DecodeJWT(token, keyPair)
	require.NoError(t, err)
	assert.Equal(t, "7", decoded.Subject)
	assert.Equal(t, "asha@coast.in", decoded.Email)
	assert.True(t, decoded.IsAdmin)
}

func TestDecodeJWTRejectsInvalidTokens(t *testing.T) {
	keyPair, err := key.GenerateKeyPair()
	require.NoError(t, err)

	otherKeyPair, err := key.GenerateKeyPair()
	require.NoError(t, err)

	expired := NewTokenClaims(1, "Ravi", "ravi@coast.in", false, -time.Minute)
	expiredToken, err := EncodeJWT(expired, keyPair)
	require.NoError(t, err)

	foreignToken, err := EncodeJWT(NewTokenClaims(1, "Ravi", "ravi@coast.in", false, time.Hour), otherKeyPair)
	require.NoError(t, err)

	testCases := []struct {
		description string
		token       string
	}{
		{"expired token", expiredToken},
		{"token signed by another key", foreignToken},
		{"garbage token", "not.a.jwt"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := DecodeJWT(tc.token, keyPair)
			assert.Error(t, err)
		})
	}
}
