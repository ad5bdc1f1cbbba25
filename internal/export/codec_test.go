package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/daybook/internal/sqlite"
	"github.com/mesh-intelligence/daybook/pkg/types"
)

func openTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func seedEntry(t *testing.T, store types.Store, id, title string) types.Entry {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	e := types.Entry{
		ID:          id,
		JournalID:   "j1",
		Title:       title,
		Content:     "some content",
		ContentType: types.ContentTypePlain,
		Tags:        []string{"test"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, store.PutEntry(e))
	return e
}

func TestExportJSONShape(t *testing.T) {
	store := openTestStore(t)
	seedEntry(t, store, "e1", "First")
	require.NoError(t, store.PutJournal(types.Journal{
		ID: "j1", Name: "Personal", IsDefault: true, CreatedAt: time.Now().UTC(),
	}))

	codec := NewCodec(store, nil)
	data, err := codec.ExportJSON()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"entries", "journals", "categories", "tags", "settings", "exportedAt"} {
		assert.Contains(t, raw, key)
	}

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "First", doc.Entries[0].Title)
	require.Len(t, doc.Journals, 1)
	assert.True(t, doc.Journals[0].IsDefault)
	assert.False(t, doc.ExportedAt.IsZero())
}

func TestExportJSONEmptyStoreEmitsArrays(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Clear())

	codec := NewCodec(store, nil)
	data, err := codec.ExportJSON()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, "[]", string(raw["entries"]))
	assert.JSONEq(t, "[]", string(raw["journals"]))
}

func TestImportJSONRoundTrip(t *testing.T) {
	src := openTestStore(t)
	seedEntry(t, src, "e1", "Kept across stores")
	require.NoError(t, src.PutJournal(types.Journal{
		ID: "j1", Name: "Personal", CreatedAt: time.Now().UTC(),
	}))
	data, err := NewCodec(src, nil).ExportJSON()
	require.NoError(t, err)

	dst := openTestStore(t)
	require.NoError(t, NewCodec(dst, nil).ImportJSON(data))

	entries, err := dst.AllEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Kept across stores", entries[0].Title)

	journals, err := dst.AllJournals()
	require.NoError(t, err)
	require.Len(t, journals, 1)
}

func TestImportJSONMergesByID(t *testing.T) {
	store := openTestStore(t)
	seedEntry(t, store, "e1", "Original")
	seedEntry(t, store, "e2", "Untouched")

	doc := Document{
		Entries: []types.Entry{{
			ID: "e1", Title: "Replaced", Content: "new content",
			ContentType: types.ContentTypePlain,
			CreatedAt:   time.Now().UTC(), UpdatedAt: time.Now().UTC(),
		}},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, NewCodec(store, nil).ImportJSON(data))

	entries, err := store.AllEntries()
	require.NoError(t, err)
	titles := make(map[string]string, len(entries))
	for _, e := range entries {
		titles[e.ID] = e.Title
	}
	assert.Equal(t, "Replaced", titles["e1"])
	assert.Equal(t, "Untouched", titles["e2"])
}

func TestImportJSONRejectsMalformedPayloads(t *testing.T) {
	store := openTestStore(t)
	codec := NewCodec(store, nil)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty", payload: ""},
		{name: "not json", payload: "hello world"},
		{name: "top-level array", payload: `[{"id":"e1"}]`},
		{name: "truncated object", payload: `{"entries": [`},
		{name: "wrong field type", payload: `{"entries": "nope"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := codec.ImportJSON([]byte(tc.payload))
			assert.ErrorIs(t, err, types.ErrParse)
		})
	}
}

func TestImportJSONIgnoresUnknownKeysAndMissingArrays(t *testing.T) {
	store := openTestStore(t)
	codec := NewCodec(store, nil)

	payload := `{"version": 3, "appName": "something else", "entries": []}`
	require.NoError(t, codec.ImportJSON([]byte(payload)))

	entries, err := store.AllEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
