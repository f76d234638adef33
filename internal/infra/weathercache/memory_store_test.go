package weathercache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfitter/internal/domain/weather"
)

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "current")
	require.NoError(t, err)
	require.False(t, ok)

	reading := weather.Reading{TemperatureF: 58, Condition: "Cloudy ☁️"}
	require.NoError(t, store.Set(ctx, "current", reading, 10*time.Minute))

	got, ok, err := store.Get(ctx, "current")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, reading, got)

	now = now.Add(10 * time.Minute)
	_, ok, err = store.Get(ctx, "current")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreWithoutTTLNeverExpires(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", weather.Reading{TemperatureF: 1}, 0))

	store.now = func() time.Time { return time.Now().Add(24 * time.Hour) }
	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
}
