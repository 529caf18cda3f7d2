package usage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterDailyLimit(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(10)

	for i := 0; i < 10; i++ {
		ok, err := l.Allow(ctx, "session-1")
		require.NoError(t, err)
		require.True(t, ok, "call %d should be allowed", i+1)
		require.NoError(t, l.Record(ctx, "session-1"))
	}

	ok, err := l.Allow(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, ok, "11th call must be rejected")

	// A different session is unaffected.
	ok, err = l.Allow(ctx, "session-2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiterDayRollover(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 23, 0, 0, 0, time.Local)
	l := NewMemoryLimiter(10).WithClock(func() time.Time { return now })

	for i := 0; i < 10; i++ {
		require.NoError(t, l.Record(ctx, "s"))
	}
	ok, err := l.Allow(ctx, "s")
	require.NoError(t, err)
	require.False(t, ok)

	// Next calendar day: the count resets before evaluating.
	now = now.Add(2 * time.Hour)
	ok, err = l.Allow(ctx, "s")
	require.NoError(t, err)
	assert.True(t, ok)

	info, err := l.Status(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 0, info.Used)
	assert.Equal(t, 10, info.Remaining)
}

func TestMemoryLimiterStatus(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(10)

	info, err := l.Status(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, 0, info.Used)
	assert.Equal(t, 10, info.Remaining)
	assert.Equal(t, 10, info.Limit)

	require.NoError(t, l.Record(ctx, "fresh"))
	require.NoError(t, l.Record(ctx, "fresh"))

	info, err = l.Status(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, 2, info.Used)
	assert.Equal(t, 8, info.Remaining)
}

func TestMemoryLimiterRemainingNeverNegative(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(2)

	for i := 0; i < 5; i++ {
		require.NoError(t, l.Record(ctx, "s"))
	}
	info, err := l.Status(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 5, info.Used)
	assert.Equal(t, 0, info.Remaining)
}
