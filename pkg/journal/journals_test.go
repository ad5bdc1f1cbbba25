package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/daybook/internal/logging"
	"github.com/mesh-intelligence/daybook/internal/sqlite"
	"github.com/mesh-intelligence/daybook/pkg/types"
)

func newRepos(t *testing.T) (*JournalRepository, *EntryRepository, *sqlite.Store) {
	t.Helper()
	store := newTestStore(t)
	entries := NewEntryRepository(store, logging.Nop())
	require.NoError(t, entries.Load())
	journals := NewJournalRepository(store, entries, logging.Nop())
	require.NoError(t, journals.Load())
	return journals, entries, store
}

func defaultOf(t *testing.T, repo *JournalRepository) types.Journal {
	t.Helper()
	def, err := repo.DefaultJournal()
	require.NoError(t, err)
	return def
}

func countDefaults(js []types.Journal) int {
	n := 0
	for _, j := range js {
		if j.IsDefault {
			n++
		}
	}
	return n
}

func TestLoadSeedsDefaultJournal(t *testing.T) {
	repo, _, store := newRepos(t)

	js := repo.Journals()
	require.Len(t, js, 1)
	assert.Equal(t, "Personal", js[0].Name)
	assert.Equal(t, "#4F46E5", js[0].Color)
	assert.True(t, js[0].IsDefault)

	// A second load must reuse the seeded journal, not add another.
	entries := NewEntryRepository(store, logging.Nop())
	require.NoError(t, entries.Load())
	again := NewJournalRepository(store, entries, logging.Nop())
	require.NoError(t, again.Load())
	assert.Len(t, again.Journals(), 1)
}

func TestAddValidatesDraft(t *testing.T) {
	repo, _, _ := newRepos(t)

	_, err := repo.Add(types.JournalDraft{Name: "  "})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = repo.Add(types.JournalDraft{Name: "Travel", Theme: "plaid"})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestAddNonDefaultKeepsCurrentDefault(t *testing.T) {
	repo, _, _ := newRepos(t)
	seeded := defaultOf(t, repo)

	id, err := repo.Add(types.JournalDraft{Name: "Travel", Theme: types.ThemeWaves})
	require.NoError(t, err)

	js := repo.Journals()
	assert.Len(t, js, 2)
	assert.Equal(t, 1, countDefaults(js))
	assert.Equal(t, seeded.ID, defaultOf(t, repo).ID)
	assert.NotEqual(t, seeded.ID, id)
}

func TestAddDefaultFlipsPrevious(t *testing.T) {
	repo, _, store := newRepos(t)
	seeded := defaultOf(t, repo)

	id, err := repo.Add(types.JournalDraft{Name: "Work", IsDefault: true})
	require.NoError(t, err)

	assert.Equal(t, id, defaultOf(t, repo).ID)
	assert.Equal(t, 1, countDefaults(repo.Journals()))

	// The flip is durable, not just in memory.
	stored, err := store.AllJournals()
	require.NoError(t, err)
	assert.Equal(t, 1, countDefaults(stored))
	for _, j := range stored {
		if j.ID == seeded.ID {
			assert.False(t, j.IsDefault)
		}
	}
}

func TestFirstJournalBecomesDefaultRegardless(t *testing.T) {
	store := newTestStore(t)
	entries := NewEntryRepository(store, logging.Nop())
	require.NoError(t, entries.Load())
	repo := NewJournalRepository(store, entries, logging.Nop())
	// No Load: the collection starts empty.

	id, err := repo.Add(types.JournalDraft{Name: "Only One"})
	require.NoError(t, err)
	assert.Equal(t, id, defaultOf(t, repo).ID)
}

func TestSetDefault(t *testing.T) {
	repo, _, _ := newRepos(t)
	seeded := defaultOf(t, repo)
	other, err := repo.Add(types.JournalDraft{Name: "Travel"})
	require.NoError(t, err)

	require.NoError(t, repo.SetDefault(other))
	assert.Equal(t, other, defaultOf(t, repo).ID)
	assert.Equal(t, 1, countDefaults(repo.Journals()))

	// Setting the current default again is a no-op.
	require.NoError(t, repo.SetDefault(other))
	assert.Equal(t, other, defaultOf(t, repo).ID)

	require.NoError(t, repo.SetDefault(seeded.ID))
	assert.Equal(t, seeded.ID, defaultOf(t, repo).ID)

	assert.ErrorIs(t, repo.SetDefault("missing"), types.ErrNotFound)
}

func TestUpdateJournal(t *testing.T) {
	repo, _, _ := newRepos(t)
	id := defaultOf(t, repo).ID

	name := "Daily Notes"
	color := "#10B981"
	require.NoError(t, repo.Update(id, types.JournalPatch{Name: &name, Color: &color}))

	j, err := repo.Journal(id)
	require.NoError(t, err)
	assert.Equal(t, "Daily Notes", j.Name)
	assert.Equal(t, "#10B981", j.Color)
	assert.True(t, j.IsDefault)

	empty := ""
	assert.ErrorIs(t, repo.Update(id, types.JournalPatch{Name: &empty}), types.ErrValidation)
	assert.ErrorIs(t, repo.Update("missing", types.JournalPatch{Name: &name}), types.ErrNotFound)
}

func TestTouchLastUsed(t *testing.T) {
	repo, _, _ := newRepos(t)
	id := defaultOf(t, repo).ID
	require.True(t, defaultOf(t, repo).LastUsedAt.IsZero())

	require.NoError(t, repo.TouchLastUsed(id))

	j, err := repo.Journal(id)
	require.NoError(t, err)
	assert.False(t, j.LastUsedAt.IsZero())
}

func TestDeleteDefaultRefused(t *testing.T) {
	repo, _, _ := newRepos(t)

	err := repo.Delete(defaultOf(t, repo).ID)
	assert.ErrorIs(t, err, types.ErrCannotDeleteDefault)
	assert.Len(t, repo.Journals(), 1)

	assert.ErrorIs(t, repo.Delete("missing"), types.ErrNotFound)
}

func TestDeleteCascadesEntries(t *testing.T) {
	repo, entries, store := newRepos(t)
	doomed, err := repo.Add(types.JournalDraft{Name: "Doomed"})
	require.NoError(t, err)
	keep := defaultOf(t, repo).ID

	mustAdd(t, entries, types.EntryDraft{JournalID: doomed, Content: "going away"})
	mustAdd(t, entries, types.EntryDraft{JournalID: doomed, Content: "also going"})
	kept := mustAdd(t, entries, types.EntryDraft{JournalID: keep, Content: "staying"})

	require.NoError(t, repo.Delete(doomed))

	assert.Len(t, repo.Journals(), 1)
	left := entries.Entries()
	require.Len(t, left, 1)
	assert.Equal(t, kept, left[0].ID)

	stored, err := store.AllEntries()
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestTransferEntries(t *testing.T) {
	repo, entries, _ := newRepos(t)
	src, err := repo.Add(types.JournalDraft{Name: "Source"})
	require.NoError(t, err)
	dst, err := repo.Add(types.JournalDraft{Name: "Destination"})
	require.NoError(t, err)

	mustAdd(t, entries, types.EntryDraft{JournalID: src, Content: "a"})
	mustAdd(t, entries, types.EntryDraft{JournalID: src, Content: "b"})

	assert.ErrorIs(t, repo.TransferEntries(src, src), types.ErrTransfer)
	assert.ErrorIs(t, repo.TransferEntries(src, "missing"), types.ErrTransfer)

	require.NoError(t, repo.TransferEntries(src, dst))

	srcJournal, err := repo.Journal(src)
	require.NoError(t, err)
	assert.Zero(t, srcJournal.EntryCount)
	dstJournal, err := repo.Journal(dst)
	require.NoError(t, err)
	assert.Equal(t, 2, dstJournal.EntryCount)
}

func TestJournalsStampEntryCounts(t *testing.T) {
	repo, entries, _ := newRepos(t)
	id := defaultOf(t, repo).ID
	mustAdd(t, entries, types.EntryDraft{JournalID: id, Content: "a"})
	mustAdd(t, entries, types.EntryDraft{JournalID: id, Content: "b"})

	js := repo.Journals()
	require.Len(t, js, 1)
	assert.Equal(t, 2, js[0].EntryCount)

	j, err := repo.Journal(id)
	require.NoError(t, err)
	assert.Equal(t, 2, j.EntryCount)

	_, err = repo.Journal("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestJournalsOldestFirst(t *testing.T) {
	repo, _, _ := newRepos(t)
	second, err := repo.Add(types.JournalDraft{Name: "Second"})
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	third, err := repo.Add(types.JournalDraft{Name: "Third"})
	require.NoError(t, err)

	js := repo.Journals()
	require.Len(t, js, 3)
	assert.Equal(t, "Personal", js[0].Name)
	assert.Equal(t, second, js[1].ID)
	assert.Equal(t, third, js[2].ID)
}
