package journal

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mesh-intelligence/daybook/internal/logging"
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// Default journal seeded on first run.
const (
	defaultJournalName  = "Personal"
	defaultJournalColor = "#4F46E5"
	defaultJournalIcon  = "📔"
)

// JournalRepository manages journal containers: the single-default
// invariant, cascading deletes, and entry transfers. Cross-entity work goes
// through the EntryRepository so the store and the search index stay
// coherent.
type JournalRepository struct {
	mu      sync.Mutex
	store   types.Store
	entries *EntryRepository
	log     logging.Logger

	journals []types.Journal // oldest first
}

// NewJournalRepository creates a repository over the given store and entry
// repository. Call Load before using it.
func NewJournalRepository(store types.Store, entries *EntryRepository, log logging.Logger) *JournalRepository {
	return &JournalRepository{
		store:   store,
		entries: entries,
		log:     log.With("component", "journals"),
	}
}

// Load reads the journals from the store, seeding a single default journal
// on a fresh installation.
func (r *JournalRepository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	js, err := r.store.AllJournals()
	if err != nil {
		return fmt.Errorf("load journals: %w", err)
	}

	if len(js) == 0 {
		seed := types.Journal{
			ID:        newUUID(),
			Name:      defaultJournalName,
			Color:     defaultJournalColor,
			Icon:      defaultJournalIcon,
			Theme:     types.ThemeSolid,
			IsDefault: true,
			CreatedAt: time.Now(),
		}
		if err := r.store.PutJournal(seed); err != nil {
			return fmt.Errorf("seed default journal: %w", err)
		}
		js = []types.Journal{seed}
		r.log.Info("default journal created", "id", seed.ID)
	}

	sort.SliceStable(js, func(i, j int) bool {
		return js[i].CreatedAt.Before(js[j].CreatedAt)
	})
	r.journals = js
	return nil
}

// Add creates a journal. The very first journal ever created becomes the
// default regardless of the draft; otherwise the draft's default flag is
// honored and flips the previous default off in the same transaction.
func (r *JournalRepository) Add(draft types.JournalDraft) (string, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return "", fmt.Errorf("%w: journal name must not be empty", types.ErrValidation)
	}
	if draft.Theme != "" && !types.ValidTheme(draft.Theme) {
		return "", fmt.Errorf("%w: unknown theme %q", types.ErrValidation, draft.Theme)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	j := types.Journal{
		ID:        newUUID(),
		Name:      draft.Name,
		Color:     draft.Color,
		Icon:      draft.Icon,
		Theme:     draft.Theme,
		IsDefault: draft.IsDefault || len(r.journals) == 0,
		CreatedAt: time.Now(),
	}

	if j.IsDefault && len(r.journals) > 0 {
		// Taking over the default: flip the old one off in the same
		// store transaction.
		batch := []types.Journal{j}
		flipped := make([]int, 0, 1)
		for i := range r.journals {
			if r.journals[i].IsDefault {
				off := r.journals[i]
				off.IsDefault = false
				batch = append(batch, off)
				flipped = append(flipped, i)
			}
		}
		if err := r.store.PutJournals(batch); err != nil {
			return "", fmt.Errorf("add journal: %w", err)
		}
		for _, i := range flipped {
			r.journals[i].IsDefault = false
		}
	} else {
		if err := r.store.PutJournal(j); err != nil {
			return "", fmt.Errorf("add journal: %w", err)
		}
	}

	r.journals = append(r.journals, j)
	r.log.Info("journal added", "id", j.ID, "name", j.Name, "default", j.IsDefault)
	return j.ID, nil
}

// Update merges the patch over the journal. Renames and recolors never
// touch entry counts or the default flag. ErrNotFound for an unknown id.
func (r *JournalRepository) Update(id string, patch types.JournalPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: journal name must not be empty", types.ErrValidation)
	}
	if patch.Theme != nil && !types.ValidTheme(*patch.Theme) {
		return fmt.Errorf("%w: unknown theme %q", types.ErrValidation, *patch.Theme)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(id)
	if i < 0 {
		return fmt.Errorf("update journal %s: %w", id, types.ErrNotFound)
	}

	j := r.journals[i]
	patch.Apply(&j)
	if err := r.store.PutJournal(j); err != nil {
		return fmt.Errorf("update journal %s: %w", id, err)
	}
	r.journals[i] = j
	return nil
}

// SetDefault makes the given journal the sole default. The whole flip is
// staged in memory and written in one store transaction before the lock
// releases, so readers never observe zero or two defaults.
func (r *JournalRepository) SetDefault(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := r.find(id)
	if target < 0 {
		return fmt.Errorf("set default journal %s: %w", id, types.ErrNotFound)
	}
	if r.journals[target].IsDefault {
		return nil
	}

	next := make([]types.Journal, len(r.journals))
	copy(next, r.journals)
	for i := range next {
		next[i].IsDefault = i == target
	}
	if err := r.store.PutJournals(next); err != nil {
		return fmt.Errorf("set default journal %s: %w", id, err)
	}
	r.journals = next
	r.log.Info("default journal changed", "id", id)
	return nil
}

// Delete removes a journal and every entry it contains. The default
// journal cannot be deleted. ErrNotFound for an unknown id.
func (r *JournalRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(id)
	if i < 0 {
		return fmt.Errorf("delete journal %s: %w", id, types.ErrNotFound)
	}
	if r.journals[i].IsDefault {
		return fmt.Errorf("delete journal %s: %w", id, types.ErrCannotDeleteDefault)
	}

	removed, err := r.entries.DeleteByJournal(id)
	if err != nil {
		return fmt.Errorf("delete journal %s: %w", id, err)
	}
	if err := r.store.DeleteJournal(id); err != nil {
		return fmt.Errorf("delete journal %s: %w", id, err)
	}

	r.journals = append(r.journals[:i], r.journals[i+1:]...)
	r.log.Info("journal deleted", "id", id, "entries_removed", removed)
	return nil
}

// TransferEntries re-points every entry of one journal to another. The
// source journal record itself is untouched. Rejected when source and
// destination are the same journal or the destination does not exist.
func (r *JournalRepository) TransferEntries(fromID, toID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fromID == toID {
		return fmt.Errorf("%w: source and destination are the same journal", types.ErrTransfer)
	}
	if r.find(toID) < 0 {
		return fmt.Errorf("%w: destination journal %s not found", types.ErrTransfer, toID)
	}

	n, err := r.entries.ReassignJournal(fromID, toID)
	if err != nil {
		return fmt.Errorf("transfer entries: %w", err)
	}
	r.log.Info("entries transferred", "from", fromID, "to", toID, "count", n)
	return nil
}

// TouchLastUsed stamps the journal's last-used time. ErrNotFound for an
// unknown id.
func (r *JournalRepository) TouchLastUsed(id string) error {
	now := time.Now()
	return r.Update(id, types.JournalPatch{LastUsedAt: &now})
}

// Journal returns a single journal by id with its entry count stamped.
// ErrNotFound for an unknown id.
func (r *JournalRepository) Journal(id string) (types.Journal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(id)
	if i < 0 {
		return types.Journal{}, fmt.Errorf("journal %s: %w", id, types.ErrNotFound)
	}
	j := r.journals[i]
	j.EntryCount = r.entries.CountByJournal()[id]
	return j, nil
}

// Journals returns a copy of the collection, oldest first, with entry
// counts computed from the entry repository on read.
func (r *JournalRepository) Journals() []types.Journal {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := r.entries.CountByJournal()
	out := make([]types.Journal, len(r.journals))
	copy(out, r.journals)
	for i := range out {
		out[i].EntryCount = counts[out[i].ID]
	}
	return out
}

// DefaultJournal returns the current default journal. The collection
// always has one after Load.
func (r *JournalRepository) DefaultJournal() (types.Journal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, j := range r.journals {
		if j.IsDefault {
			return j, nil
		}
	}
	return types.Journal{}, fmt.Errorf("default journal: %w", types.ErrNotFound)
}

// find returns the position of id, or -1. Callers hold the lock.
func (r *JournalRepository) find(id string) int {
	for i := range r.journals {
		if r.journals[i].ID == id {
			return i
		}
	}
	return -1
}
