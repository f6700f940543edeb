package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10, 1024, nil)

	require.NoError(t, c.Set(ctx, "k", []byte("value"), 0))

	value, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("value"), value)
}

func TestMemoryCache_GetMiss(t *testing.T) {
	c := NewMemoryCache(10, 1024, nil)

	_, found, err := c.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10, 1024, nil)
	require.NoError(t, c.Set(ctx, "k", []byte("value"), 0))

	value, _, err := c.Get(ctx, "k")
	require.NoError(t, err)
	value[0] = 'X'

	again, _, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again)
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10, 1024, nil)
	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

	time.Sleep(10 * time.Millisecond)

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10, 1024, nil)
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Millisecond))

	time.Sleep(20 * time.Millisecond)

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2, 1024, nil)

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))

	// Touch "a" so "b" becomes the eviction candidate.
	_, _, err := c.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "c", []byte("3"), 0))

	_, foundA, _ := c.Get(ctx, "a")
	_, foundB, _ := c.Get(ctx, "b")
	_, foundC, _ := c.Get(ctx, "c")
	assert.True(t, foundA)
	assert.False(t, foundB)
	assert.True(t, foundC)
}

func TestMemoryCache_RejectsOversizedItem(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10, 8, nil)

	require.NoError(t, c.Set(ctx, "k", []byte("far too large to fit"), 0))

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10, 1024, nil)
	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

	require.NoError(t, c.Delete(ctx, "k"))

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_ClearWithPrefixPattern(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10, 1024, nil)
	require.NoError(t, c.Set(ctx, "restaurants:alice:roma", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "restaurants:alice:bar", []byte("2"), 0))
	require.NoError(t, c.Set(ctx, "restaurants:bob:roma", []byte("3"), 0))

	require.NoError(t, c.Clear(ctx, "restaurants:alice:*"))

	_, foundAlice, _ := c.Get(ctx, "restaurants:alice:roma")
	_, foundBob, _ := c.Get(ctx, "restaurants:bob:roma")
	assert.False(t, foundAlice)
	assert.True(t, foundBob)
}

func TestMemoryCache_Stats(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2, 1024, nil)

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	_, _, _ = c.Get(ctx, "a")
	_, _, _ = c.Get(ctx, "missing")

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("fill-%d", i), []byte("x"), 0))
	}

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 2, stats.Items)
	assert.Greater(t, stats.Evictions, int64(0))
	assert.InDelta(t, 0.5, stats.HitRate, 0.0001)
}
