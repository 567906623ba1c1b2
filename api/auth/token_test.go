package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("super-secret")

	token, err := GenerateToken(42, secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseUserID(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseUserID_Expired(t *testing.T) {
	secret := []byte("secret")

	token, err := GenerateToken(1, secret, -1*time.Second)
	require.NoError(t, err)

	_, err = ParseUserID(token, secret)
	assert.Error(t, err)
}

func TestParseUserID_WrongSecret(t *testing.T) {
	token, err := GenerateToken(1, []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ParseUserID(token, []byte("wrong-secret"))
	assert.Error(t, err)
}

func TestParseUserID_Garbage(t *testing.T) {
	_, err := ParseUserID("not-a-token", []byte("secret"))
	assert.Error(t, err)
}
