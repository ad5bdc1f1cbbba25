// Journals table accessor.
package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

const upsertJournalSQL = `
INSERT INTO journals (
    journal_id, name, color, icon, theme, is_default, created_at, last_used_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(journal_id) DO UPDATE SET
    name = excluded.name,
    color = excluded.color,
    icon = excluded.icon,
    theme = excluded.theme,
    is_default = excluded.is_default,
    created_at = excluded.created_at,
    last_used_at = excluded.last_used_at
`

const selectJournalSQL = `
SELECT journal_id, name, color, icon, theme, is_default, created_at, last_used_at
FROM journals
`

// PutJournal inserts or replaces a single journal by id.
func (s *Store) PutJournal(j types.Journal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := putJournal(s.db, j); err != nil {
		return types.NewStoreError("put journal", err)
	}
	return nil
}

// PutJournals writes the whole batch in a single transaction. The
// default-journal flip depends on this: either every record lands or none.
func (s *Store) PutJournals(js []types.Journal) error {
	if len(js) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return types.NewStoreError("put journals", err)
	}
	defer tx.Rollback()

	for _, j := range js {
		if err := putJournal(tx, j); err != nil {
			return types.NewStoreError("put journals", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return types.NewStoreError("put journals", err)
	}
	return nil
}

func putJournal(ex execer, j types.Journal) error {
	_, err := ex.Exec(upsertJournalSQL,
		j.ID, j.Name, j.Color, j.Icon, j.Theme, j.IsDefault,
		encodeTime(j.CreatedAt), encodeTime(j.LastUsedAt),
	)
	return err
}

// DeleteJournal removes a journal record by id. A no-op if absent. The
// caller owns cascading entry deletion.
func (s *Store) DeleteJournal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM journals WHERE journal_id = ?", id); err != nil {
		return types.NewStoreError("delete journal", err)
	}
	return nil
}

// AllJournals returns every journal. Order is not guaranteed.
func (s *Store) AllJournals() ([]types.Journal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return allJournalsTx(s.db)
}

func allJournalsTx(q querier) ([]types.Journal, error) {
	rows, err := q.Query(selectJournalSQL)
	if err != nil {
		return nil, types.NewStoreError("all journals", err)
	}
	defer rows.Close()

	var journals []types.Journal
	for rows.Next() {
		var (
			j                   types.Journal
			createdAt, lastUsed string
		)
		err := rows.Scan(&j.ID, &j.Name, &j.Color, &j.Icon, &j.Theme,
			&j.IsDefault, &createdAt, &lastUsed)
		if err != nil {
			return nil, types.NewStoreError("all journals", err)
		}
		if j.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, types.NewStoreError("all journals",
				fmt.Errorf("decoding created_at for %s: %w", j.ID, err))
		}
		if j.LastUsedAt, err = decodeTime(lastUsed); err != nil {
			return nil, types.NewStoreError("all journals",
				fmt.Errorf("decoding last_used_at for %s: %w", j.ID, err))
		}
		journals = append(journals, j)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStoreError("all journals", err)
	}
	return journals, nil
}
