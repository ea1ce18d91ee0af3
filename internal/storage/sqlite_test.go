package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seogen/internal/keyword"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLoadCollection_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	parent := 1
	records := []keyword.Record{
		{ID: 0, Text: "nails", SearchVolume: 900, Intent: "Commercial", Difficulty: 35.5,
			CostPerClick: 1.2, Role: keyword.RolePrimary, Order: 0},
		{ID: 1, Text: "types", SearchVolume: 500, Role: keyword.RoleSection, Order: 1},
		{ID: 2, Text: "acrylic", SearchVolume: 300, Role: keyword.RoleSubSection, Order: 2, ParentID: &parent},
	}

	require.NoError(t, store.SaveCollection(ctx, records))

	got, err := store.LoadCollection(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestLoadCollection_EmptyStoreMeansNoCollection(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LoadCollection(context.Background())
	assert.ErrorIs(t, err, keyword.ErrNoCollection)
}

func TestSaveCollection_ReplacesWholesale(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := []keyword.Record{
		{ID: 0, Text: "old a", SearchVolume: 1, Order: 0},
		{ID: 1, Text: "old b", SearchVolume: 2, Order: 1},
	}
	require.NoError(t, store.SaveCollection(ctx, first))

	second := []keyword.Record{{ID: 5, Text: "new", SearchVolume: 3, Order: 0}}
	require.NoError(t, store.SaveCollection(ctx, second))

	got, err := store.LoadCollection(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Text)
}

func TestLoadCollection_OrderedByRank(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	records := []keyword.Record{
		{ID: 0, Text: "third", SearchVolume: 1, Order: 2},
		{ID: 1, Text: "first", SearchVolume: 1, Order: 0},
		{ID: 2, Text: "second", SearchVolume: 1, Order: 1},
	}
	require.NoError(t, store.SaveCollection(ctx, records))

	got, err := store.LoadCollection(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)
	assert.Equal(t, "third", got[2].Text)
}
