package sqlite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

func TestSnapshotRoundTrip(t *testing.T) {
	src, _ := newTestStore(t)
	require.NoError(t, src.PutEntries([]types.Entry{
		testEntry("e1", "j1"),
		testEntry("e2", "j1"),
	}))
	require.NoError(t, src.PutJournal(testJournal("j1", "Personal", true)))
	require.NoError(t, src.ReplaceTags([]types.Tag{{Name: "daily", Count: 2}}))
	require.NoError(t, src.PutSetting(types.Setting{
		Key: "theme", Value: json.RawMessage(`"dark"`),
	}))

	snap, err := src.ExportAll()
	require.NoError(t, err)
	assert.Len(t, snap.Entries, 2)
	assert.Len(t, snap.Journals, 1)
	assert.Len(t, snap.Categories, 8)
	assert.Len(t, snap.Tags, 1)
	assert.Len(t, snap.Settings, 1)

	dst, _ := newTestStore(t)
	require.NoError(t, dst.Clear())
	require.NoError(t, dst.ImportAll(snap))

	got, err := dst.ExportAll()
	require.NoError(t, err)
	assert.ElementsMatch(t, snap.Entries, got.Entries)
	assert.Equal(t, snap.Journals, got.Journals)
	assert.Equal(t, snap.Categories, got.Categories)
	assert.Equal(t, snap.Tags, got.Tags)
	assert.Equal(t, snap.Settings, got.Settings)
}

func TestImportAllMergesByID(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.PutEntry(testEntry("e1", "j1")))

	updated := testEntry("e1", "j2")
	updated.Title = "Imported"
	require.NoError(t, store.ImportAll(types.Snapshot{
		Entries: []types.Entry{updated, testEntry("e2", "j2")},
		Tags:    []types.Tag{{Name: "daily", Count: 9}},
	}))

	entries, err := store.AllEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byID := make(map[string]types.Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	assert.Equal(t, "Imported", byID["e1"].Title)
	assert.Equal(t, "j2", byID["e1"].JournalID)

	tags, err := store.AllTags()
	require.NoError(t, err)
	assert.Equal(t, []types.Tag{{Name: "daily", Count: 9}}, tags)
}

func TestImportAllEmptySnapshotIsNoop(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.PutEntry(testEntry("e1", "j1")))

	require.NoError(t, store.ImportAll(types.Snapshot{}))

	entries, err := store.AllEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
