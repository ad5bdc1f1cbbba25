// Full-store snapshot in/out for the export codec.
package sqlite

import (
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// ExportAll returns a copy of every collection.
func (s *Store) ExportAll() (types.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var snap types.Snapshot
	var err error

	if snap.Entries, err = allEntriesTx(s.db); err != nil {
		return types.Snapshot{}, err
	}
	if snap.Journals, err = allJournalsTx(s.db); err != nil {
		return types.Snapshot{}, err
	}
	if snap.Categories, err = allCategoriesTx(s.db); err != nil {
		return types.Snapshot{}, err
	}
	if snap.Tags, err = allTagsTx(s.db); err != nil {
		return types.Snapshot{}, err
	}
	if snap.Settings, err = allSettingsTx(s.db); err != nil {
		return types.Snapshot{}, err
	}
	return snap, nil
}

// ImportAll upserts every record in the snapshot by id inside a single
// transaction: either the whole document lands or none of it does.
func (s *Store) ImportAll(snap types.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return types.NewStoreError("import", err)
	}
	defer tx.Rollback()

	for _, e := range snap.Entries {
		if err := putEntry(tx, e); err != nil {
			return types.NewStoreError("import", err)
		}
	}
	for _, j := range snap.Journals {
		if err := putJournal(tx, j); err != nil {
			return types.NewStoreError("import", err)
		}
	}
	for _, c := range snap.Categories {
		if err := putCategory(tx, c); err != nil {
			return types.NewStoreError("import", err)
		}
	}
	for _, t := range snap.Tags {
		if _, err := tx.Exec(`INSERT INTO tags (name, count) VALUES (?, ?)
			ON CONFLICT(name) DO UPDATE SET count = excluded.count`,
			t.Name, t.Count); err != nil {
			return types.NewStoreError("import", err)
		}
	}
	for _, set := range snap.Settings {
		if err := putSetting(tx, set); err != nil {
			return types.NewStoreError("import", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.NewStoreError("import", err)
	}
	return nil
}
