package calendarrepo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfitter/internal/domain/calendar"
)

func TestJSONRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	repo := NewJSONRepository(path)
	ctx := context.Background()

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, events)

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, calendar.Event{ID: "a", Title: "Interview", Date: "2026-03-02", Occasion: "Formal", CreatedAt: created}))
	require.NoError(t, repo.Create(ctx, calendar.Event{ID: "b", Title: "Hike", Date: "2026-03-03", CreatedAt: created}))

	events, err = NewJSONRepository(path).List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "Formal", events[0].Occasion)
	require.True(t, events[0].CreatedAt.Equal(created))
}

func TestJSONRepositoryDelete(t *testing.T) {
	repo := NewJSONRepository(filepath.Join(t.TempDir(), "events.json"))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, calendar.Event{ID: "a", Title: "Interview", Date: "2026-03-02"}))

	ok, err := repo.Delete(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = repo.Delete(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, events)
}
