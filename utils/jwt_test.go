package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, err := tm.Generate("1", "admin")
	require.NoError(t, err)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "TableOrder", claims.Issuer)
}

func TestTokenRejections(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	token, err := tm.Generate("1", "admin")
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Parse("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewTokenManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Generate("1", "admin")
	require.NoError(t, err)
	_, err = tm.Parse(old)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRevoke(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	token, err := tm.Generate("1", "admin")
	require.NoError(t, err)

	assert.False(t, tm.IsRevoked(token))
	tm.Revoke(token)
	assert.True(t, tm.IsRevoked(token))

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrRevokedToken)
}
