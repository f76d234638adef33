package wardroberepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfitter/internal/domain/wardrobe"
)

func TestJSONRepositoryEmptyFile(t *testing.T) {
	repo := NewJSONRepository(filepath.Join(t.TempDir(), "clothing.json"))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)

	_, ok, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestJSONRepositoryCreateAssignsNextID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clothing.json")
	seed := `[{"id":4,"label":"Jeans","tags":[],"src":"/img/jeans.png"},{"id":2,"label":"Jacket","tags":["saved"],"src":"/img/jacket.png"}]`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))
	repo := NewJSONRepository(path)
	ctx := context.Background()

	created, err := repo.Create(ctx, wardrobe.Item{ID: 100, Label: "Dress", Src: "/img/dress.png"})
	require.NoError(t, err)
	require.Equal(t, 5, created.ID)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "Dress", items[2].Label)

	first, err := NewJSONRepository(filepath.Join(t.TempDir(), "new.json")).Create(ctx, wardrobe.Item{Label: "Shirt"})
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)
}

func TestJSONRepositoryUpdatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clothing.json")
	repo := NewJSONRepository(path)
	ctx := context.Background()
	created, err := repo.Create(ctx, wardrobe.Item{Label: "Jacket"})
	require.NoError(t, err)

	updated, ok, err := repo.Update(ctx, created.ID, func(it *wardrobe.Item) {
		it.AddTag(wardrobe.TagSaved)
	})
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, updated.HasTag(wardrobe.TagSaved))

	reloaded, ok, err := NewJSONRepository(path).Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{wardrobe.TagSaved}, reloaded.Tags)

	_, ok, err = repo.Update(ctx, 42, func(*wardrobe.Item) { t.Fatal("mutate called for missing item") })
	require.NoError(t, err)
	require.False(t, ok)
}
