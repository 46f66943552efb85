package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	type payload struct {
		Role string `json:"role"`
	}

	require.NoError(t, c.Set(ctx, "generated_test:abc123", payload{Role: "Analyst"}, time.Minute))

	var got payload
	require.NoError(t, c.Get(ctx, "generated_test:abc123", &got))
	assert.Equal(t, "Analyst", got.Role)

	require.NoError(t, c.Delete(ctx, "generated_test:abc123"))
	assert.ErrorIs(t, c.Get(ctx, "generated_test:abc123", &got), ErrCacheMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := &memoryCache{entries: make(map[string]memoryEntry), now: func() time.Time { return now }}

	require.NoError(t, c.Set(ctx, "k", 1, time.Second))

	var v int
	require.NoError(t, c.Get(ctx, "k", &v))

	now = now.Add(2 * time.Second)
	assert.ErrorIs(t, c.Get(ctx, "k", &v), ErrCacheMiss)
}

func TestMemoryCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "generated_test:a", 1, 0))
	require.NoError(t, c.Set(ctx, "generated_test:b", 2, 0))
	require.NoError(t, c.Set(ctx, "result:a", 3, 0))

	require.NoError(t, c.DeletePattern(ctx, "generated_test:*"))

	var v int
	assert.ErrorIs(t, c.Get(ctx, "generated_test:a", &v), ErrCacheMiss)
	assert.ErrorIs(t, c.Get(ctx, "generated_test:b", &v), ErrCacheMiss)
	assert.NoError(t, c.Get(ctx, "result:a", &v))
	assert.Equal(t, 3, v)
}
