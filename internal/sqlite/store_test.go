package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := Open(types.Config{DataDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, dir
}

func testEntry(id, journalID string) types.Entry {
	now := time.Date(2026, 5, 20, 8, 0, 0, 0, time.UTC)
	return types.Entry{
		ID:          id,
		JournalID:   journalID,
		Title:       "Entry " + id,
		Content:     "content of " + id,
		ContentType: types.ContentTypePlain,
		Tags:        []string{"daily"},
		WordCount:   3,
		CharCount:   12,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	_, dir := newTestStore(t)

	info, err := os.Stat(filepath.Join(dir, DBFileName))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestOpenRejectsEmptyDataDir(t *testing.T) {
	_, err := Open(types.Config{})
	assert.Error(t, err)
}

func TestOpenSeedsDefaultCategories(t *testing.T) {
	store, dir := newTestStore(t)

	cats, err := store.AllCategories()
	require.NoError(t, err)
	require.Len(t, cats, 8)
	assert.Equal(t, "Personal", cats[0].Name)
	assert.Equal(t, "Relationships", cats[7].Name)
	for i, c := range cats {
		assert.Equal(t, i+1, c.Ordinal)
		assert.NotEmpty(t, c.ID)
		assert.False(t, c.IsArchived)
	}

	// Reopening must not duplicate the seed.
	require.NoError(t, store.Close())
	reopened, err := Open(types.Config{DataDir: dir})
	require.NoError(t, err)
	defer reopened.Close()

	cats, err = reopened.AllCategories()
	require.NoError(t, err)
	assert.Len(t, cats, 8)
}

func TestCloseIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}

func TestClearWipesEveryCollection(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.PutEntry(testEntry("e1", "j1")))
	require.NoError(t, store.PutJournal(types.Journal{ID: "j1", Name: "Personal"}))
	require.NoError(t, store.ReplaceTags([]types.Tag{{Name: "daily", Count: 1}}))

	require.NoError(t, store.Clear())

	entries, err := store.AllEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
	journals, err := store.AllJournals()
	require.NoError(t, err)
	assert.Empty(t, journals)
	cats, err := store.AllCategories()
	require.NoError(t, err)
	assert.Empty(t, cats)
	tags, err := store.AllTags()
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestEstimateSize(t *testing.T) {
	store, _ := newTestStore(t)

	size, err := store.EstimateSize()
	require.NoError(t, err)
	assert.Positive(t, size)
}
