package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeCache_PutGet(t *testing.T) {
	ctx := context.Background()
	c := NewRangeCache(time.Hour)

	_, ok, err := c.Get(ctx, "5BAA6")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "5BAA6", "ABC:1"))

	body, ok, err := c.Get(ctx, "5BAA6")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ABC:1", body)
	assert.Equal(t, 1, c.Len())
}

func TestRangeCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewRangeCache(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Put(ctx, "00000", "body"))

	now = now.Add(30 * time.Second)
	_, ok, _ := c.Get(ctx, "00000")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = c.Get(ctx, "00000")
	assert.False(t, ok)
}
