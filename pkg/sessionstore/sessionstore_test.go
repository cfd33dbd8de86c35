package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRevocationExpiresWithSession(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "jti-unknown")
	require.NoError(t, err)
	assert.False(t, revoked)

	// A revocation past the session's own expiry no longer matters.
	require.NoError(t, store.Revoke(ctx, "jti-old", time.Now().Add(-time.Minute)))
	revoked, err = store.IsRevoked(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryStoreCodeIsOneTime(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SaveCode(ctx, "code-1", "token-1", time.Minute))

	token, err := store.ExchangeCode(ctx, "code-1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	_, err = store.ExchangeCode(ctx, "code-1")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestMemoryStoreExpiredCodeRejected(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SaveCode(ctx, "code-1", "token-1", -time.Second))

	_, err := store.ExchangeCode(ctx, "code-1")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}
