// Package journal provides the Entry and Journal repositories: the single
// surface through which callers read and mutate journaling data. Each
// repository keeps the durable store and the in-memory search index
// coherent; callers never touch either directly.
package journal

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/daybook/internal/logging"
	"github.com/mesh-intelligence/daybook/internal/search"
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// EntryRepository orchestrates entry reads and writes over the store and
// the search index. Every mutation persists first, then updates the working
// set, then rebuilds the index, all under one lock, so a search issued
// right after an add always reflects it.
type EntryRepository struct {
	mu    sync.RWMutex
	store types.Store
	index *search.Index
	log   logging.Logger

	// Working set, newest first. Loaded once and maintained in step
	// with the store; kept as-is when a reload fails.
	entries []types.Entry
}

// NewEntryRepository creates a repository over the given store. Call Load
// before using it.
func NewEntryRepository(store types.Store, log logging.Logger) *EntryRepository {
	return &EntryRepository{
		store: store,
		index: search.New(),
		log:   log.With("component", "entries"),
	}
}

// newUUID generates a UUID v7 string, falling back to v4 if v7 generation
// fails.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Load populates the working set from the store and rebuilds the index.
// Fails soft: on a store error the previously loaded entries stay visible
// and the error is returned for the caller to surface.
func (r *EntryRepository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.store.AllEntries()
	if err != nil {
		r.log.Error("load entries failed, keeping previous working set", "err", err)
		return fmt.Errorf("load entries: %w", err)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	r.entries = all
	r.rebuildIndex()
	r.log.Info("entries loaded", "count", len(all))
	return nil
}

// Add validates the draft, assigns an id and creation timestamps, persists
// the entry, and rebuilds the index. Returns the new entry's id.
func (r *EntryRepository) Add(draft types.EntryDraft) (string, error) {
	if strings.TrimSpace(draft.Content) == "" {
		return "", fmt.Errorf("%w: entry content must not be empty", types.ErrValidation)
	}
	contentType := draft.ContentType
	if contentType == "" {
		contentType = types.ContentTypePlain
	}
	if !types.ValidContentType(contentType) {
		return "", fmt.Errorf("%w: unknown content type %q", types.ErrValidation, draft.ContentType)
	}
	if !types.ValidMood(draft.Mood) {
		return "", fmt.Errorf("%w: mood %d out of range", types.ErrValidation, draft.Mood)
	}

	now := time.Now()
	e := types.Entry{
		ID:          newUUID(),
		JournalID:   draft.JournalID,
		Title:       draft.Title,
		Content:     draft.Content,
		ContentType: contentType,
		Mood:        draft.Mood,
		Category:    draft.Category,
		Tags:        append([]string(nil), draft.Tags...),
		IsFavorite:  draft.IsFavorite,
		IsEncrypted: draft.IsEncrypted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if draft.Location != nil {
		loc := *draft.Location
		e.Location = &loc
	}
	e.RecountContent()

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.PutEntry(e); err != nil {
		return "", fmt.Errorf("add entry: %w", err)
	}
	r.entries = append([]types.Entry{e}, r.entries...)
	r.syncTags()
	r.rebuildIndex()
	r.log.Info("entry added", "id", e.ID, "journal", e.JournalID)
	return e.ID, nil
}

// Update merges the patch over the stored entry, bumps UpdatedAt strictly
// forward, persists, and rebuilds the index. Returns ErrNotFound for an
// unknown id. ID and CreatedAt never change.
func (r *EntryRepository) Update(id string, patch types.EntryPatch) error {
	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		return fmt.Errorf("%w: entry content must not be empty", types.ErrValidation)
	}
	if patch.ContentType != nil && !types.ValidContentType(*patch.ContentType) {
		return fmt.Errorf("%w: unknown content type %q", types.ErrValidation, *patch.ContentType)
	}
	if patch.Mood != nil && !types.ValidMood(*patch.Mood) {
		return fmt.Errorf("%w: mood %d out of range", types.ErrValidation, *patch.Mood)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(id)
	if i < 0 {
		return fmt.Errorf("update entry %s: %w", id, types.ErrNotFound)
	}

	e := r.entries[i]
	patch.Apply(&e)
	now := time.Now()
	if !now.After(e.UpdatedAt) {
		// Clock did not advance within timestamp resolution; UpdatedAt
		// still must move strictly forward.
		now = e.UpdatedAt.Add(time.Nanosecond)
	}
	e.UpdatedAt = now

	if err := r.store.PutEntry(e); err != nil {
		return fmt.Errorf("update entry %s: %w", id, err)
	}
	r.entries[i] = e
	r.syncTags()
	r.rebuildIndex()
	return nil
}

// Delete removes an entry. Idempotent: deleting an absent id is not an
// error.
func (r *EntryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(id)
	if i < 0 {
		return nil
	}
	if err := r.store.DeleteEntries([]string{id}); err != nil {
		return fmt.Errorf("delete entry %s: %w", id, err)
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	r.syncTags()
	r.rebuildIndex()
	return nil
}

// DeleteByJournal removes every entry belonging to the given journal in one
// batch. Used by the journal cascade delete. Returns the number removed.
func (r *EntryRepository) DeleteByJournal(journalID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []string
	for _, e := range r.entries {
		if e.JournalID == journalID {
			ids = append(ids, e.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := r.store.DeleteEntries(ids); err != nil {
		return 0, fmt.Errorf("delete entries of journal %s: %w", journalID, err)
	}

	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.JournalID != journalID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	r.syncTags()
	r.rebuildIndex()
	r.log.Info("journal entries deleted", "journal", journalID, "count", len(ids))
	return len(ids), nil
}

// ToggleFavorite flips the favorite flag. ErrNotFound for an unknown id.
func (r *EntryRepository) ToggleFavorite(id string) error {
	r.mu.RLock()
	i := r.find(id)
	if i < 0 {
		r.mu.RUnlock()
		return fmt.Errorf("toggle favorite %s: %w", id, types.ErrNotFound)
	}
	next := !r.entries[i].IsFavorite
	r.mu.RUnlock()

	return r.Update(id, types.EntryPatch{IsFavorite: &next})
}

// ReassignJournal re-points every entry of one journal to another. Returns
// the number of entries moved. The search index is untouched: journal
// membership is not indexed.
func (r *EntryRepository) ReassignJournal(fromID, toID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	n, err := r.store.ReassignEntries(fromID, toID, now)
	if err != nil {
		return 0, fmt.Errorf("reassign entries: %w", err)
	}
	for i := range r.entries {
		if r.entries[i].JournalID == fromID {
			r.entries[i].JournalID = toID
			r.entries[i].UpdatedAt = now
		}
	}
	return n, nil
}

// Entry returns a single entry by id. ErrNotFound for an unknown id.
func (r *EntryRepository) Entry(id string) (types.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.find(id)
	if i < 0 {
		return types.Entry{}, fmt.Errorf("entry %s: %w", id, types.ErrNotFound)
	}
	return r.entries[i], nil
}

// Entries returns a copy of the working set, newest first.
func (r *EntryRepository) Entries() []types.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]types.Entry(nil), r.entries...)
}

// Search returns entries ranked by the index for the query. A blank query
// returns the full unfiltered working set.
func (r *EntryRepository) Search(query string) []types.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if strings.TrimSpace(query) == "" {
		return append([]types.Entry(nil), r.entries...)
	}

	ids := r.index.Search(query)
	results := make([]types.Entry, 0, len(ids))
	for _, id := range ids {
		if i := r.find(id); i >= 0 {
			results = append(results, r.entries[i])
		}
	}
	return results
}

// ByTag returns entries carrying the given tag.
func (r *EntryRepository) ByTag(tag string) []types.Entry {
	return r.filter(func(e *types.Entry) bool { return e.HasTag(tag) })
}

// ByCategory returns entries labeled with the given category.
func (r *EntryRepository) ByCategory(category string) []types.Entry {
	return r.filter(func(e *types.Entry) bool { return e.Category == category })
}

// Favorites returns entries marked favorite.
func (r *EntryRepository) Favorites() []types.Entry {
	return r.filter(func(e *types.Entry) bool { return e.IsFavorite })
}

// Tags returns the derived tag aggregates, most used first.
func (r *EntryRepository) Tags() []types.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.tagAggregates()
}

// CountByJournal returns entry counts keyed by journal id, computed from
// the working set.
func (r *EntryRepository) CountByJournal() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, e := range r.entries {
		counts[e.JournalID]++
	}
	return counts
}

// find returns the working-set position of id, or -1. Callers hold the lock.
func (r *EntryRepository) find(id string) int {
	for i := range r.entries {
		if r.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *EntryRepository) filter(keep func(*types.Entry) bool) []types.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []types.Entry
	for i := range r.entries {
		if keep(&r.entries[i]) {
			out = append(out, r.entries[i])
		}
	}
	return out
}

// rebuildIndex reconstructs the search index from the working set.
// Callers hold the write lock.
func (r *EntryRepository) rebuildIndex() {
	docs := make([]search.Document, 0, len(r.entries))
	for _, e := range r.entries {
		docs = append(docs, search.Document{
			ID:      e.ID,
			Title:   e.Title,
			Content: e.Content,
			Tags:    e.Tags,
		})
	}
	r.index.Rebuild(docs)
}

// tagAggregates recomputes tag usage counts from the working set, most used
// first. Callers hold at least the read lock.
func (r *EntryRepository) tagAggregates() []types.Tag {
	counts := make(map[string]int)
	for _, e := range r.entries {
		for _, tag := range e.Tags {
			counts[tag]++
		}
	}
	tags := make([]types.Tag, 0, len(counts))
	for name, n := range counts {
		tags = append(tags, types.Tag{Name: name, Count: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Name < tags[j].Name
	})
	return tags
}

// syncTags pushes the recomputed tag aggregates to the store so exports
// carry them. Tags are derived data: a failed resync is logged and repaired
// by the next mutation rather than failing the whole operation. Callers
// hold the write lock.
func (r *EntryRepository) syncTags() {
	if err := r.store.ReplaceTags(r.tagAggregates()); err != nil {
		r.log.Warn("tag aggregate resync failed", "err", err)
	}
}
