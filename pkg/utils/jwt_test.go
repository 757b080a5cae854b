package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-1", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)

	_, err = ParseToken("another-secret-another-secret-xx", token)
	assert.Error(t, err)

	expired, err := GenerateToken(testSecret, "user-1", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(testSecret, expired)
	assert.Error(t, err)

	anonymous, err := GenerateToken(testSecret, "", time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(testSecret, anonymous)
	assert.Error(t, err)
}
