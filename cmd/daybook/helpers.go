// Shared helpers for daybook CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mesh-intelligence/daybook/internal/logging"
	"github.com/mesh-intelligence/daybook/internal/sqlite"
	"github.com/mesh-intelligence/daybook/pkg/journal"
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// app bundles the store and the repositories for one command invocation.
// The caller must defer Close().
type app struct {
	store    *sqlite.Store
	entries  *journal.EntryRepository
	journals *journal.JournalRepository
	log      logging.Logger
}

// openApp resolves the data directory, opens the store, and loads both
// repositories.
func openApp() (*app, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	log := newLogger()
	store, err := sqlite.Open(types.Config{DataDir: dataDir})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	entries := journal.NewEntryRepository(store, log)
	if err := entries.Load(); err != nil {
		store.Close()
		return nil, err
	}
	journals := journal.NewJournalRepository(store, entries, log)
	if err := journals.Load(); err != nil {
		store.Close()
		return nil, err
	}

	return &app{store: store, entries: entries, journals: journals, log: log}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// newLogger returns a stderr logger; warnings and up unless --verbose.
func newLogger() logging.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return logging.NewText(os.Stderr, level)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// shortID truncates a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// findEntry resolves an entry by full id or unique id prefix.
func findEntry(a *app, id string) (types.Entry, error) {
	if e, err := a.entries.Entry(id); err == nil {
		return e, nil
	}

	var matches []types.Entry
	for _, e := range a.entries.Entries() {
		if strings.HasPrefix(e.ID, id) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return types.Entry{}, fmt.Errorf("entry %s: %w", id, types.ErrNotFound)
	default:
		return types.Entry{}, fmt.Errorf("entry id %q is ambiguous (%d matches)", id, len(matches))
	}
}

// journalNames returns a lookup from journal id to name.
func (a *app) journalNames() map[string]string {
	names := make(map[string]string)
	for _, j := range a.journals.Journals() {
		names[j.ID] = j.Name
	}
	return names
}
