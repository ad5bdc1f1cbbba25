package types

import "time"

// Snapshot is a full copy of every collection in the store, used by the
// export/import codec. Collections may be nil when empty.
type Snapshot struct {
	Entries    []Entry
	Journals   []Journal
	Categories []Category
	Tags       []Tag
	Settings   []Setting
}

// Store is the durable record store backing the repositories. Implementations
// persist entries, journals, categories, tags, and settings across process
// restarts. A Store performs no cross-entity validation; invariants such as
// the single default journal are the repositories' responsibility.
//
// Write failures surface as *StoreError. Deletes of absent ids are no-ops,
// not errors.
type Store interface {
	// Entries.
	PutEntry(e Entry) error
	PutEntries(es []Entry) error
	AllEntries() ([]Entry, error)
	DeleteEntries(ids []string) error
	CountEntriesByJournal() (map[string]int, error)
	ReassignEntries(fromJournalID, toJournalID string, at time.Time) (int64, error)

	// Journals. PutJournals writes the whole batch in a single
	// transaction; the default-journal flip relies on that.
	PutJournal(j Journal) error
	PutJournals(js []Journal) error
	DeleteJournal(id string) error
	AllJournals() ([]Journal, error)

	// Ancillary collections.
	ReplaceTags(ts []Tag) error
	AllTags() ([]Tag, error)
	PutCategories(cs []Category) error
	AllCategories() ([]Category, error)
	PutSetting(s Setting) error
	AllSettings() ([]Setting, error)

	// ExportAll returns a full snapshot; ImportAll upserts every record
	// by id in one transaction (overwrite-if-exists, never merge).
	ExportAll() (Snapshot, error)
	ImportAll(snap Snapshot) error

	// Clear wipes every collection. Irreversible.
	Clear() error

	// EstimateSize reports best-effort byte usage of the underlying
	// storage, or 0 (without error) when it cannot be determined.
	EstimateSize() (int64, error)

	Close() error
}
